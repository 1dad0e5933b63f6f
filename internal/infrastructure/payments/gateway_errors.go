package payments

import (
	"strings"
)

// Provider-independent classification for entities.ApiError.Code.
const (
	ErrorCodeBadRequest       = "bad_request"
	ErrorCodeUnauthorized     = "unauthorized"
	ErrorCodeInvalidUsers     = "invalid_users"
	ErrorCodeCustomerNotFound = "customer_not_found"
)

// classifyGatewayError inspects the provider error body. Mercado Pago only
// exposes these details in the error text.
func classifyGatewayError(err error) string {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrorCodeCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrorCodeInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrorCodeUnauthorized
	case isGatewayBadRequest(err):
		return ErrorCodeBadRequest
	}
	return ""
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
