package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinti4/entity"
)

func TestProcessResponseEmpty(t *testing.T) {
	result := ProcessResponse(map[string]string{})
	assert.Equal(t, entity.StatusError, result.Status)
	assert.False(t, result.Success)
	assert.Equal(t, "no data received", result.Message)

	result = ProcessResponse(nil)
	assert.Equal(t, entity.StatusError, result.Status)
}

func TestProcessResponseCancelled(t *testing.T) {
	result := ProcessResponse(map[string]string{
		"UserCancelled": "true",
		"MessageType":   "8",
		"ResponseCode":  "00",
	})
	// cancellation short-circuits even a success-looking response
	assert.Equal(t, entity.StatusCancelled, result.Status)
	assert.False(t, result.Success)
}

func TestProcessResponseSuccess(t *testing.T) {
	for _, messageType := range []string{"8", "10", "P", "M"} {
		result := ProcessResponse(map[string]string{
			"MessageType":  messageType,
			"ResponseCode": "00",
		})
		assert.Equal(t, entity.StatusSuccess, result.Status, messageType)
		assert.True(t, result.Success, messageType)
	}
}

func TestProcessResponseDeclined(t *testing.T) {
	result := ProcessResponse(map[string]string{
		"MessageType":  "8",
		"ResponseCode": "05",
	})
	assert.Equal(t, entity.StatusDeclined, result.Status)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "05")
}

func TestProcessResponseUnknown(t *testing.T) {
	// message type outside the success set despite code 00
	result := ProcessResponse(map[string]string{
		"MessageType":  "X",
		"ResponseCode": "00",
	})
	assert.Equal(t, entity.StatusUnknown, result.Status)
	assert.False(t, result.Success)

	result = ProcessResponse(map[string]string{"SomeField": "1"})
	assert.Equal(t, entity.StatusUnknown, result.Status)
}

func TestProcessResponseEchoesData(t *testing.T) {
	postData := map[string]string{
		"MessageType":     "8",
		"ResponseCode":    "00",
		"MerchantRef":     "R1",
		"MerchantSession": "S1",
		"CustomField":     "kept",
	}
	result := ProcessResponse(postData)
	assert.Equal(t, postData, result.Data)

	require.NotNil(t, result.Debug)
	assert.Equal(t, "8", result.Debug.MessageType)
	assert.Equal(t, "00", result.Debug.ResponseCode)
	assert.Equal(t, "R1", result.Debug.MerchantRef)
	assert.Equal(t, "S1", result.Debug.MerchantSession)
	assert.NotEmpty(t, result.Debug.Timestamp)
}

func TestProcessResponseDcc(t *testing.T) {
	result := ProcessResponse(map[string]string{
		"MessageType":            "8",
		"ResponseCode":           "00",
		"dccCurrency":            "978",
		"dccRate":                "0.0091",
		"dccMarkup":              "3.5",
		"dccTransactionCurrency": "132",
	})
	require.NotNil(t, result.Dcc)
	assert.Equal(t, "978", result.Dcc.Currency)
	assert.Equal(t, "0.0091", result.Dcc.Rate)
	assert.Equal(t, "3.5", result.Dcc.Markup)
	assert.Equal(t, "132", result.Dcc.TransactionCurrency)

	result = ProcessResponse(map[string]string{"MessageType": "8", "ResponseCode": "00"})
	assert.Nil(t, result.Dcc)
}
