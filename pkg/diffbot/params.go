package diffbot

import (
	"net/url"
	"strconv"
)

// BuildSearchParams validates q and returns the outbound query parameters
// for the DQL search endpoint. No side effects; safe to call concurrently.
func BuildSearchParams(token string, q SearchQuery) (url.Values, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("token", token)
	params.Set("query", q.Query)
	params.Set("num", strconv.Itoa(q.Count))
	params.Set("start", strconv.Itoa(q.Offset))
	params.Set("format", "json")
	return params, nil
}

// BuildEnhanceParams validates req and returns the outbound query parameters
// for the Knowledge Graph enhance endpoint. Optional fields left unset are
// omitted entirely, boolean flags are emitted as the literal "true" only
// when set, and size is emitted only when it differs from the default.
func BuildEnhanceParams(token string, req EnhanceRequest) (url.Values, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("token", token)
	params.Set("type", string(req.Type))
	inputs := []struct {
		key   string
		value string
	}{
		{"name", req.Name},
		{"url", req.URL},
		{"location", req.Location},
		{"phone", req.Phone},
		{"employer", req.Employer},
		{"title", req.Title},
		{"school", req.School},
		{"ip", req.IP},
		{"id", req.ID},
	}
	for _, input := range inputs {
		if input.value != "" {
			params.Set(input.key, input.value)
		}
	}
	if req.Threshold != nil {
		params.Set("threshold", strconv.FormatFloat(*req.Threshold, 'f', -1, 64))
	}
	if req.Size != 0 && req.Size != DefaultEnhanceSize {
		params.Set("size", strconv.Itoa(req.Size))
	}
	if req.Refresh {
		params.Set("refresh", "true")
	}
	if req.Search {
		params.Set("search", "true")
	}
	return params, nil
}
