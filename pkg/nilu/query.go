package nilu

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents the optional filter parameters the NILU API accepts.
// Zero values are omitted from the query string.
type QueryParams struct {
	// Area restricts results to stations within the given area.
	Area string

	// Station restricts results to the given station.
	Station string

	// Component restricts results to the given component (e.g. "NO2").
	Component string

	// Culture selects the language of descriptive texts (e.g. "en").
	Culture string

	// Timestep restricts time series to the given timestep in seconds.
	Timestep int

	// UTD, when set, restricts stations to those with up-to-date data.
	UTD *bool

	// Components restricts observations to the given components. The API
	// expects a single ";"-joined value.
	Components []string

	// ShowInvalid, when set, includes invalid observations as null values.
	ShowInvalid *bool

	// Filters holds additional raw query parameters.
	Filters map[string][]string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithArea sets the area filter.
func (q *QueryParams) WithArea(area string) *QueryParams {
	q.Area = area

	return q
}

// WithStation sets the station filter.
func (q *QueryParams) WithStation(station string) *QueryParams {
	q.Station = station

	return q
}

// WithComponent sets the component filter.
func (q *QueryParams) WithComponent(component string) *QueryParams {
	q.Component = component

	return q
}

// WithCulture sets the culture for descriptive texts.
func (q *QueryParams) WithCulture(culture string) *QueryParams {
	q.Culture = culture

	return q
}

// WithTimestep sets the timestep filter in seconds.
func (q *QueryParams) WithTimestep(timestep int) *QueryParams {
	q.Timestep = timestep

	return q
}

// WithUTD restricts stations to those with up-to-date data.
func (q *QueryParams) WithUTD(utd bool) *QueryParams {
	q.UTD = &utd

	return q
}

// WithComponents sets the components filter for observation requests.
func (q *QueryParams) WithComponents(components ...string) *QueryParams {
	q.Components = components

	return q
}

// WithShowInvalid includes invalid observations as null values.
func (q *QueryParams) WithShowInvalid(show bool) *QueryParams {
	q.ShowInvalid = &show

	return q
}

// WithFilter adds a raw query parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = values

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Area != "" {
		values.Set("area", q.Area)
	}

	if q.Station != "" {
		values.Set("station", q.Station)
	}

	if q.Component != "" {
		values.Set("component", q.Component)
	}

	if q.Culture != "" {
		values.Set("culture", q.Culture)
	}

	if q.Timestep > 0 {
		values.Set("timestep", strconv.Itoa(q.Timestep))
	}

	if q.UTD != nil {
		values.Set("utd", strconv.FormatBool(*q.UTD))
	}

	if len(q.Components) > 0 {
		values.Set("components", strings.Join(q.Components, ";"))
	}

	if q.ShowInvalid != nil {
		values.Set("showinvalid", strconv.FormatBool(*q.ShowInvalid))
	}

	for key, vals := range q.Filters {
		for _, v := range vals {
			values.Add(key, v)
		}
	}

	return values
}
