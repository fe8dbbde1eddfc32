package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/velmart/storefront/internal/core/domain"
)

// eventPayload is the subset of a webhook event body we act on.
type eventPayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

// VerifyAndParseEvent checks the signature header against the raw body and
// parses the event. The header carries a timestamp and one or more HMAC
// signatures: "t=<unix>,v1=<hex>[,v1=<hex>...]"; the signed message is
// "<unix>.<body>".
func (c *Client) VerifyAndParseEvent(payload []byte, signatureHeader string) (*domain.GatewayEvent, error) {
	timestamp, signatures, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	verified := false
	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			verified = true
			break
		}
	}
	if !verified {
		return nil, domain.ErrSignatureInvalid
	}

	var event eventPayload
	err = json.Unmarshal(payload, &event)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}

	return &domain.GatewayEvent{
		Type:       domain.GatewayEventType(event.Type),
		GatewayRef: event.Data.Object.ID,
	}, nil
}

func parseSignatureHeader(header string) (timestamp string, signatures []string, err error) {
	if header == "" {
		return "", nil, domain.ErrSignatureInvalid
	}

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return "", nil, domain.ErrSignatureInvalid
	}
	return timestamp, signatures, nil
}
