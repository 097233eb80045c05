package internal

import (
	"fmt"
	"time"

	"vinti4/entity"
)

// successMessageTypes are the gateway message types that, combined with
// response code "00", confirm a completed transaction.
var successMessageTypes = map[string]bool{
	"8":  true,
	"10": true,
	"P":  true,
	"M":  true,
}

// ProcessResponse classifies a raw gateway POST-back into a normalized
// payment result. Classification is a priority chain: empty input, user
// cancellation and code-00 success short-circuit before the generic
// decline and unknown branches. The function never fails; malformed input
// degrades to an ERROR or UNKNOWN result.
func ProcessResponse(postData map[string]string) *entity.PaymentResult {
	result := &entity.PaymentResult{
		Status:  entity.StatusError,
		Message: "unknown transaction error",
		Data:    postData,
	}

	if len(postData) == 0 {
		result.Message = "no data received"
		result.Data = map[string]string{}
		result.Debug = newResultDebug(nil)
		return result
	}

	result.Debug = newResultDebug(postData)
	if dcc := extractDcc(postData); dcc != nil {
		result.Dcc = dcc
	}

	if postData["UserCancelled"] == "true" {
		result.Status = entity.StatusCancelled
		result.Message = "transaction cancelled by user"
		return result
	}

	responseCode := postData["ResponseCode"]
	messageType := postData["MessageType"]

	switch {
	case successMessageTypes[messageType] && responseCode == "00":
		result.Status = entity.StatusSuccess
		result.Message = "payment completed successfully"
		result.Success = true
	case responseCode != "" && responseCode != "00":
		result.Status = entity.StatusDeclined
		result.Message = fmt.Sprintf("transaction declined, code %s", responseCode)
	default:
		result.Status = entity.StatusUnknown
		result.Message = "unrecognized gateway response"
	}

	return result
}

func newResultDebug(postData map[string]string) *entity.ResultDebug {
	return &entity.ResultDebug{
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		MessageType:     postData["MessageType"],
		ResponseCode:    postData["ResponseCode"],
		MerchantRef:     postData["MerchantRef"],
		MerchantSession: postData["MerchantSession"],
	}
}

func extractDcc(postData map[string]string) *entity.DccInfo {
	currency := postData["dccCurrency"]
	if currency == "" {
		return nil
	}
	return &entity.DccInfo{
		Currency:            currency,
		Rate:                postData["dccRate"],
		Markup:              postData["dccMarkup"],
		TransactionCurrency: postData["dccTransactionCurrency"],
	}
}
