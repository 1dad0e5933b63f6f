package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"payment_processor/internal/domain/entities"
	"payment_processor/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrencyRates = "USD=1,EUR=1.2"
	DefaultDiscountCodes = "SUMMER20=percent:0.20,WELCOME10=flat:10"
	DefaultRefundFeeRate = "0.05"

	PaymentAPIDriverMercadoPago = "mercadopago"
	PaymentAPIDriverHTTP        = "http"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the process configuration, read once from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - BASE_CURRENCY (default: USD)
//   - CURRENCY_RATES (default: USD=1,EUR=1.2)
//   - DISCOUNT_CODES (default: SUMMER20=percent:0.20,WELCOME10=flat:10)
//   - REFUND_FEE_RATE (default: 0.05, must be within [0,1])
//   - PAYMENT_API_DRIVER (mercadopago | http, default: mercadopago)
//   - PAYMENT_API_ADDR (host:port, required by the http driver)
//   - MERCADOPAGO_ACCESS_TOKEN
//   - REDIS_ADDR (optional; notifications are only logged without it)
//   - NOTIFICATIONS_CHANNEL (default: payment-notifications)
type Config struct {
	Port                 int
	Policy               pricing.Policy
	PaymentAPIDriver     string
	PaymentAPIAddr       string
	MercadoPagoToken     string
	RedisAddr            string
	NotificationsChannel string
}

func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("%w: PORT=%q", ErrInvalidConfig, os.Getenv("PORT"))
	}

	policy, err := LoadPolicy()
	if err != nil {
		return Config{}, err
	}

	driver := strings.ToLower(getenvDefault("PAYMENT_API_DRIVER", PaymentAPIDriverMercadoPago))
	addr := strings.TrimSpace(os.Getenv("PAYMENT_API_ADDR"))
	switch driver {
	case PaymentAPIDriverMercadoPago:
	case PaymentAPIDriverHTTP:
		if addr == "" {
			return Config{}, fmt.Errorf("%w: PAYMENT_API_ADDR is required by the http driver", ErrInvalidConfig)
		}
	default:
		return Config{}, fmt.Errorf("%w: PAYMENT_API_DRIVER=%q", ErrInvalidConfig, driver)
	}

	return Config{
		Port:                 port,
		Policy:               policy,
		PaymentAPIDriver:     driver,
		PaymentAPIAddr:       addr,
		MercadoPagoToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		RedisAddr:            strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		NotificationsChannel: getenvDefault("NOTIFICATIONS_CHANNEL", "payment-notifications"),
	}, nil
}

// LoadPolicy builds the pricing tables from the environment.
func LoadPolicy() (pricing.Policy, error) {
	base := strings.ToUpper(getenvDefault("BASE_CURRENCY", pricing.DefaultBaseCurrency))

	rates, err := ParseCurrencyRates(getenvDefault("CURRENCY_RATES", DefaultCurrencyRates))
	if err != nil {
		return pricing.Policy{}, err
	}
	currencies, err := pricing.NewCurrencyTable(base, rates)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	effects, err := ParseDiscountCodes(getenvDefault("DISCOUNT_CODES", DefaultDiscountCodes))
	if err != nil {
		return pricing.Policy{}, err
	}
	discounts, err := pricing.NewDiscountTable(effects)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	feeRate, err := decimal.NewFromString(getenvDefault("REFUND_FEE_RATE", DefaultRefundFeeRate))
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("%w: REFUND_FEE_RATE: %v", ErrInvalidConfig, err)
	}
	refunds, err := pricing.NewRefundCalculator(feeRate)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return pricing.Policy{Currencies: currencies, Discounts: discounts, Refunds: refunds}, nil
}

// ParseCurrencyRates parses "USD=1,EUR=1.2". Codes are upper-cased.
func ParseCurrencyRates(raw string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, pair := range splitList(raw) {
		code, value, ok := strings.Cut(pair, "=")
		code = strings.ToUpper(strings.TrimSpace(code))
		if !ok || code == "" {
			return nil, fmt.Errorf("%w: CURRENCY_RATES entry %q", ErrInvalidConfig, pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: CURRENCY_RATES entry %q: %v", ErrInvalidConfig, pair, err)
		}
		out[code] = rate
	}
	return out, nil
}

// ParseDiscountCodes parses "SUMMER20=percent:0.20,WELCOME10=flat:10".
// Codes keep their case; lookups are exact.
func ParseDiscountCodes(raw string) (map[string]entities.DiscountEffect, error) {
	out := map[string]entities.DiscountEffect{}
	for _, pair := range splitList(raw) {
		code, effect, ok := strings.Cut(pair, "=")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, fmt.Errorf("%w: DISCOUNT_CODES entry %q", ErrInvalidConfig, pair)
		}
		kind, value, ok := strings.Cut(effect, ":")
		if !ok {
			return nil, fmt.Errorf("%w: DISCOUNT_CODES entry %q: want kind:value", ErrInvalidConfig, pair)
		}
		v, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: DISCOUNT_CODES entry %q: %v", ErrInvalidConfig, pair, err)
		}
		out[code] = entities.DiscountEffect{
			Kind:  entities.DiscountKind(strings.ToLower(strings.TrimSpace(kind))),
			Value: v,
		}
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
