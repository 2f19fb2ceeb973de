package handler

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/armydb/soldiers-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse is the envelope for schema violations; Message
// names the offending field path.
type validationErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// --- Request types ---

// rankRequest carries a client-supplied rank. Exactly one of name/value must
// be set; the exclusivity is enforced by a struct-level validation.
type rankRequest struct {
	Name  *string `json:"name"`
	Value *int    `json:"value" validate:"omitempty,gte=0,lte=6"`
}

type createSoldierRequest struct {
	ID          string       `json:"_id"         validate:"required,soldierid"`
	Name        string       `json:"name"        validate:"required,min=3,max=50"`
	Rank        *rankRequest `json:"rank"        validate:"required"`
	Limitations []string     `json:"limitations" validate:"omitempty,dive,min=1"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// limitationsList accepts either a JSON array of strings or a single
// comma-joined string, mirroring the querystring shorthand.
type limitationsList []string

func (l *limitationsList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = splitCSV(s)
	return nil
}

type updateSoldierRequest struct {
	Name        *string         `json:"name"        validate:"omitempty,min=3,max=50"`
	Rank        *rankRequest    `json:"rank"`
	Limitations limitationsList `json:"limitations" validate:"omitempty,dive,min=1"`
	CreatedAt   string          `json:"createdAt"`
}

// --- Mapping to service inputs ---

func (r createSoldierRequest) toInput() ports.CreateSoldierInput {
	return ports.CreateSoldierInput{
		ID:          r.ID,
		Name:        r.Name,
		Rank:        r.Rank.toInput(),
		Limitations: r.Limitations,
		CreatedAt:   parseTimestamp(r.CreatedAt),
		UpdatedAt:   parseTimestamp(r.UpdatedAt),
	}
}

func (r updateSoldierRequest) toInput() ports.UpdateSoldierInput {
	input := ports.UpdateSoldierInput{
		Name:        r.Name,
		Limitations: r.Limitations,
	}
	if r.Rank != nil {
		rank := r.Rank.toInput()
		input.Rank = &rank
	}
	if r.CreatedAt != "" {
		t := parseTimestamp(r.CreatedAt)
		if t.IsZero() {
			t = time.Now().UTC()
		}
		input.CreatedAt = &t
	}
	return input
}

func (r *rankRequest) toInput() ports.RankInput {
	if r == nil {
		return ports.RankInput{}
	}
	input := ports.RankInput{Value: r.Value}
	if r.Name != nil {
		input.Name = *r.Name
	}
	return input
}

// parseTimestamp parses an RFC 3339 timestamp. Invalid or missing values
// yield the zero time; the service coerces that to "now" instead of
// rejecting the request.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// --- Query translation ---

// queryFilter translates the list querystring into a typed filter. The two
// rank pseudo-fields map onto the nested rank document; limitations accept
// comma-joined values (repeatable); absent parameters are omitted entirely.
func queryFilter(values url.Values) (ports.SoldierFilter, error) {
	filter := ports.SoldierFilter{
		Name:     values.Get("name"),
		RankName: values.Get("rankName"),
	}

	if id := values.Get("_id"); id != "" {
		if !idRegexp.MatchString(id) {
			return ports.SoldierFilter{}, fmt.Errorf("_id must match pattern %q", idPattern)
		}
		filter.ID = id
	}

	if filter.Name != "" && (len(filter.Name) < 3 || len(filter.Name) > 50) {
		return ports.SoldierFilter{}, fmt.Errorf("name must be between 3 and 50 characters")
	}

	if v := values.Get("rankValue"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return ports.SoldierFilter{}, fmt.Errorf("rankValue must be an integer")
		}
		filter.RankValue = &n
	}

	for _, v := range values["limitations"] {
		filter.Limitations = append(filter.Limitations, splitCSV(v)...)
	}

	return filter, nil
}

// splitCSV splits a comma-joined string, trimming and lowercasing each entry.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(strings.TrimSpace(p)))
	}
	return out
}
