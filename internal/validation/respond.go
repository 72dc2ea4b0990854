package validation

import (
	"context"
	"net/http"

	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/logger"
)

// Respond writes field errors and rule violations as 422 and anything else
// as a logged 500 carrying fallback
func Respond(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	if fields, ok := AsErrors(err); ok {
		httpx.RespondJSON(w, http.StatusUnprocessableEntity, httpx.Response{
			Success: false,
			Error:   "Please correct the highlighted fields",
			Fields:  fields,
		})
		return
	}
	if rule, ok := AsRule(err); ok {
		resp := httpx.Response{Success: false, Error: rule.Message}
		if rule.Field != "" {
			resp.Fields = map[string]string{rule.Field: rule.Message}
		}
		httpx.RespondJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	logger.Error(ctx).Err(err).Msg(fallback)
	httpx.RespondError(w, http.StatusInternalServerError, fallback)
}
