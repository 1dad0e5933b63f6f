package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"payment_processor/internal/domain/entities"
	"payment_processor/internal/usecase/interfaces"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

const defaultHTTPTimeout = 5 * time.Second

// HTTPApiClient posts payloads as JSON to a payment API at addr + endpoint.
//
// The timeout is the only resilience policy here. Non-2xx responses become
// *entities.ApiError and nothing is retried.
type HTTPApiClient struct {
	client  *fasthttp.HostClient
	timeout time.Duration
}

var _ interfaces.IApiClient = (*HTTPApiClient)(nil)

func NewHTTPApiClient(addr string) *HTTPApiClient {
	return &HTTPApiClient{
		client:  &fasthttp.HostClient{Addr: addr, MaxConns: 512},
		timeout: defaultHTTPTimeout,
	}
}

func (c *HTTPApiClient) Post(ctx context.Context, endpoint string, payload entities.Payload) (entities.Ack, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Code: ErrorCodeBadRequest, Err: err}
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://" + c.client.Addr + endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBodyRaw(body)

	log.Printf("[payment][gateway] http post start addr=%s endpoint=%s kind=%s", c.client.Addr, endpoint, payload.PayloadKind())
	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		log.Printf("[payment][gateway] http post failed endpoint=%s err=%v", endpoint, err)
		return entities.Ack{}, &entities.ApiError{Endpoint: endpoint, Err: err}
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		log.Printf("[payment][gateway] http post rejected endpoint=%s status=%d", endpoint, status)
		return entities.Ack{}, &entities.ApiError{
			Endpoint: endpoint,
			Code:     codeForStatus(status),
			Err:      fmt.Errorf("unexpected status %d: %s", status, resp.Body()),
		}
	}

	ack := parseAck(resp.Body())
	log.Printf("[payment][gateway] http post success endpoint=%s provider_id=%s provider_status=%s", endpoint, ack.ProviderID, ack.ProviderStatus)
	return ack, nil
}

func codeForStatus(status int) string {
	switch status {
	case fasthttp.StatusBadRequest, fasthttp.StatusUnprocessableEntity:
		return ErrorCodeBadRequest
	case fasthttp.StatusUnauthorized, fasthttp.StatusForbidden:
		return ErrorCodeUnauthorized
	}
	return ""
}

// parseAck reads "id" and "status" from a JSON body. Bodies that are not JSON
// yield an empty ack.
func parseAck(body []byte) entities.Ack {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return entities.Ack{}
	}
	ack := entities.Ack{
		ProviderStatus:   string(v.GetStringBytes("status")),
		ProviderResponse: append(json.RawMessage(nil), body...),
	}
	if id := v.Get("id"); id != nil {
		switch id.Type() {
		case fastjson.TypeString:
			ack.ProviderID = string(id.GetStringBytes())
		case fastjson.TypeNumber:
			ack.ProviderID = id.String()
		}
	}
	return ack
}
