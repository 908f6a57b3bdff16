package model

// CurrentConditions is the flattened view of a current-conditions lookup.
// Optional numeric fields are pointers so an absent provider value renders
// as JSON null instead of a fabricated zero.
type CurrentConditions struct {
	Location      string        `json:"location"`
	Time          string        `json:"time"`
	Timezone      string        `json:"timezone"`
	IsDaytime     bool          `json:"is_daytime"`
	Condition     Condition     `json:"condition"`
	Temperature   Temperature   `json:"temperature"`
	Humidity      *int          `json:"humidity"`
	UVIndex       *int          `json:"uv_index"`
	CloudCover    *int          `json:"cloud_cover"`
	Wind          Wind          `json:"wind"`
	Precipitation Precipitation `json:"precipitation"`
}

// Condition describes the sky/precipitation state with its localized forms.
type Condition struct {
	Type   string `json:"type,omitempty"`
	Text   string `json:"text"`
	TextHe string `json:"text_he"`
	Emoji  string `json:"emoji"`
	Icon   string `json:"icon,omitempty"`
}

// Temperature carries current and feels-like readings in provider units.
type Temperature struct {
	Current   *float64 `json:"current"`
	FeelsLike *float64 `json:"feels_like"`
	Unit      string   `json:"unit"`
}

// Wind carries speed, gust and cardinal direction in provider units.
type Wind struct {
	Speed     *float64 `json:"speed"`
	Unit      string   `json:"unit"`
	Direction string   `json:"direction"`
	Gust      *float64 `json:"gust"`
}

// Precipitation carries the precipitation probability and type.
type Precipitation struct {
	Probability int    `json:"probability"`
	Type        string `json:"type"`
}

// Forecast is an ordered hourly forecast for one location.
// Entry order is the provider's order.
type Forecast struct {
	Location string          `json:"location"`
	Hourly   []ForecastEntry `json:"hourly"`
}

// ForecastEntry is one forecast hour.
type ForecastEntry struct {
	Time        string        `json:"time"`
	DisplayTime DisplayTime   `json:"display_time"`
	Temp        *float64      `json:"temp"`
	Condition   HourCondition `json:"condition"`
	Wind        HourWind      `json:"wind"`
	PrecipProb  *int          `json:"precip_prob"`
}

// DisplayTime is the provider's civil-time breakdown for a forecast hour.
type DisplayTime struct {
	Year    int `json:"year"`
	Month   int `json:"month"`
	Day     int `json:"day"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// HourCondition is the condition of a single forecast hour (no icon URL).
type HourCondition struct {
	Text   string `json:"text"`
	TextHe string `json:"text_he"`
	Emoji  string `json:"emoji"`
}

// HourWind is the wind of a single forecast hour.
type HourWind struct {
	Speed     *float64 `json:"speed"`
	Direction string   `json:"direction"`
	Gust      *float64 `json:"gust"`
}
