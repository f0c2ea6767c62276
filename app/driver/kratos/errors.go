package kratos

import (
	"encoding/json"
	"net/http"

	kratosclient "github.com/ory/kratos-client-go"

	"user-admin-service/app/domain"
	apperrors "user-admin-service/app/utils/errors"
)

// kratosErrorBody mirrors the error envelope Kratos admin endpoints return.
type kratosErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error"`
}

// translateKratosError converts SDK errors into domain or app errors. A 404
// maps to domain.ErrIdentityNotFound so callers can branch on absence.
func (a *IdentityClientAdapter) translateKratosError(err error, httpResp *http.Response, operation string) error {
	status := getHTTPStatus(httpResp)

	if status == http.StatusNotFound {
		return domain.ErrIdentityNotFound
	}

	message := err.Error()
	if openAPIErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		var body kratosErrorBody
		if jsonErr := json.Unmarshal(openAPIErr.Body(), &body); jsonErr == nil && body.Error.Message != "" {
			message = body.Error.Message
			if body.Error.Reason != "" {
				message = message + ": " + body.Error.Reason
			}
		}
	}

	appErr := apperrors.Wrap(apperrors.ErrCodeKratosError, message, err)
	appErr.WithContext("operation", operation)
	if status != 0 {
		appErr.WithContext("http_status", status)
	}

	return appErr
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
