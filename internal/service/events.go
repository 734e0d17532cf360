package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/model"
)

const (
	accountCreatedEventType = "flow.AccountCreated"
	accountCreatedAddress   = `value.fields.#(name=="address").value.value`
)

// createdAccountAddress extracts the new account address, without 0x, from an AccountCreated event.
func createdAccountAddress(events []model.Event) (string, error) {
	for _, event := range events {
		if event.Type != accountCreatedEventType {
			continue
		}
		payload, err := base64.StdEncoding.DecodeString(event.Payload)
		if err != nil {
			return "", fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		if !gjson.ValidBytes(payload) {
			return "", fmt.Errorf("%s payload is not valid json", event.Type)
		}
		address := gjson.GetBytes(payload, accountCreatedAddress).String()
		if address == "" {
			return "", fmt.Errorf("%s payload has no address field", event.Type)
		}
		return strings.ReplaceAll(address, "0x", ""), nil
	}
	return "", ErrAccountCreatedEventNotFound
}
