package weather

import "skycast/internal/model"

// Response mirrors of the provider payloads. Every field is optional on
// the wire; normalization fills documented defaults so a partial payload
// never fails.

// measure is a value+unit pair as the provider encodes temperatures.
type measure struct {
	Degrees *float64 `json:"degrees"`
	Unit    string   `json:"unit"`
}

type conditionPayload struct {
	Type        string `json:"type"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	IconBaseURI string `json:"iconBaseUri"`
}

type windPayload struct {
	Speed struct {
		Value *float64 `json:"value"`
		Unit  string   `json:"unit"`
	} `json:"speed"`
	Direction struct {
		Cardinal string `json:"cardinal"`
	} `json:"direction"`
	Gust struct {
		Value *float64 `json:"value"`
	} `json:"gust"`
}

type precipPayload struct {
	Probability struct {
		Percent *int   `json:"percent"`
		Type    string `json:"type"`
	} `json:"probability"`
}

// currentResponse covers the fields of a currentConditions:lookup payload
// this client consumes.
type currentResponse struct {
	CurrentTime string `json:"currentTime"`
	TimeZone    struct {
		ID string `json:"id"`
	} `json:"timeZone"`
	IsDaytime            *bool            `json:"isDaytime"`
	WeatherCondition     conditionPayload `json:"weatherCondition"`
	Temperature          measure          `json:"temperature"`
	FeelsLikeTemperature measure          `json:"feelsLikeTemperature"`
	RelativeHumidity     *int             `json:"relativeHumidity"`
	UVIndex              *int             `json:"uvIndex"`
	CloudCover           *int             `json:"cloudCover"`
	Wind                 windPayload      `json:"wind"`
	Precipitation        precipPayload    `json:"precipitation"`
}

type forecastResponse struct {
	ForecastHours []forecastHour `json:"forecastHours"`
}

type forecastHour struct {
	Interval struct {
		StartTime string `json:"startTime"`
	} `json:"interval"`
	DisplayDateTime  model.DisplayTime `json:"displayDateTime"`
	Temperature      measure           `json:"temperature"`
	WeatherCondition conditionPayload  `json:"weatherCondition"`
	Wind             windPayload       `json:"wind"`
	Precipitation    precipPayload     `json:"precipitation"`
}

const (
	unknownCondition  = "UNKNOWN"
	defaultTempUnit   = "CELSIUS"
	defaultWindUnit   = "KILOMETERS_PER_HOUR"
	defaultPrecipType = "RAIN"
)

// normalize flattens the nested provider payload into the result structure,
// labeling it with the original location string.
func (raw *currentResponse) normalize(label string) *model.CurrentConditions {
	condType := raw.WeatherCondition.Type
	if condType == "" {
		condType = unknownCondition
	}
	textHe, glyph := localizeCondition(condType)

	isDay := true
	if raw.IsDaytime != nil {
		isDay = *raw.IsDaytime
	}

	tempUnit := raw.Temperature.Unit
	if tempUnit == "" {
		tempUnit = defaultTempUnit
	}
	windUnit := raw.Wind.Speed.Unit
	if windUnit == "" {
		windUnit = defaultWindUnit
	}

	probability := 0
	if raw.Precipitation.Probability.Percent != nil {
		probability = *raw.Precipitation.Probability.Percent
	}
	precipType := raw.Precipitation.Probability.Type
	if precipType == "" {
		precipType = defaultPrecipType
	}

	return &model.CurrentConditions{
		Location:  label,
		Time:      raw.CurrentTime,
		Timezone:  raw.TimeZone.ID,
		IsDaytime: isDay,
		Condition: model.Condition{
			Type:   condType,
			Text:   raw.WeatherCondition.Description.Text,
			TextHe: textHe,
			Emoji:  glyph,
			Icon:   raw.WeatherCondition.IconBaseURI,
		},
		Temperature: model.Temperature{
			Current:   raw.Temperature.Degrees,
			FeelsLike: raw.FeelsLikeTemperature.Degrees,
			Unit:      tempUnit,
		},
		Humidity:   raw.RelativeHumidity,
		UVIndex:    raw.UVIndex,
		CloudCover: raw.CloudCover,
		Wind: model.Wind{
			Speed:     raw.Wind.Speed.Value,
			Unit:      windUnit,
			Direction: raw.Wind.Direction.Cardinal,
			Gust:      raw.Wind.Gust.Value,
		},
		Precipitation: model.Precipitation{
			Probability: probability,
			Type:        precipType,
		},
	}
}

// normalize flattens one forecast hour with the same defensive defaults.
func (h *forecastHour) normalize() model.ForecastEntry {
	condType := h.WeatherCondition.Type
	if condType == "" {
		condType = unknownCondition
	}
	textHe, glyph := localizeCondition(condType)

	return model.ForecastEntry{
		Time:        h.Interval.StartTime,
		DisplayTime: h.DisplayDateTime,
		Temp:        h.Temperature.Degrees,
		Condition: model.HourCondition{
			Text:   h.WeatherCondition.Description.Text,
			TextHe: textHe,
			Emoji:  glyph,
		},
		Wind: model.HourWind{
			Speed:     h.Wind.Speed.Value,
			Direction: h.Wind.Direction.Cardinal,
			Gust:      h.Wind.Gust.Value,
		},
		PrecipProb: h.Precipitation.Probability.Percent,
	}
}
