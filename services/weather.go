package services

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/UpekaFernando/tour-blog-info-final/config"

	"github.com/goccy/go-json"
)

// openWeatherBaseURL is a var so tests can point it at a stub server.
var openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

type CurrentWeather struct {
	Location      string    `json:"location"`
	Region        string    `json:"region,omitempty"`
	Country       string    `json:"country"`
	Temperature   int       `json:"temperature"`
	FeelsLike     int       `json:"feelsLike"`
	Humidity      int       `json:"humidity"`
	Pressure      int       `json:"pressure"`
	WindSpeed     int       `json:"windSpeed"` // km/h
	WindDirection int       `json:"windDirection"`
	Visibility    float64   `json:"visibility"` // km
	Cloudiness    int       `json:"cloudiness"`
	Conditions    string    `json:"conditions"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Sunrise       time.Time `json:"sunrise"`
	Sunset        time.Time `json:"sunset"`
	Timestamp     time.Time `json:"timestamp"`
	Error         string    `json:"error,omitempty"`
}

type ForecastDay struct {
	Date         string `json:"date"`
	TempMax      int    `json:"tempMax"`
	TempMin      int    `json:"tempMin"`
	AvgHumidity  int    `json:"avgHumidity"`
	AvgWindSpeed int    `json:"avgWindSpeed"`
	Conditions   string `json:"conditions"`
}

type owWeather struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
	Clouds     struct {
		All int `json:"all"`
	} `json:"clouds"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Dt int64 `json:"dt"`
}

type owForecast struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

func fetchJSON(apiURL string, dest interface{}) error {
	resp, err := http.Get(apiURL)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

func formatCurrentWeather(data owWeather) CurrentWeather {
	w := CurrentWeather{
		Location:      data.Name,
		Country:       data.Sys.Country,
		Temperature:   int(math.Round(data.Main.Temp)),
		FeelsLike:     int(math.Round(data.Main.FeelsLike)),
		Humidity:      data.Main.Humidity,
		Pressure:      data.Main.Pressure,
		WindSpeed:     int(math.Round(data.Wind.Speed * 3.6)), // m/s to km/h
		WindDirection: data.Wind.Deg,
		Visibility:    float64(data.Visibility) / 1000, // meters to km
		Cloudiness:    data.Clouds.All,
		Sunrise:       time.Unix(data.Sys.Sunrise, 0),
		Sunset:        time.Unix(data.Sys.Sunset, 0),
		Timestamp:     time.Unix(data.Dt, 0),
	}
	if len(data.Weather) > 0 {
		w.Conditions = data.Weather[0].Main
		w.Description = data.Weather[0].Description
		w.Icon = data.Weather[0].Icon
	}
	return w
}

// GetCurrentWeather fetches current conditions for a Sri Lankan city.
func GetCurrentWeather(city string) (CurrentWeather, error) {
	apiURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		openWeatherBaseURL,
		url.QueryEscape(city+",LK"),
		config.GetEnv("WEATHER_API_KEY", ""),
	)

	var data owWeather
	if err := fetchJSON(apiURL, &data); err != nil {
		return CurrentWeather{}, errors.New("unable to fetch weather data")
	}

	return formatCurrentWeather(data), nil
}

// GetWeatherByCoordinates fetches current conditions for a lat/lon pair.
func GetWeatherByCoordinates(lat, lon float64) (CurrentWeather, error) {
	apiURL := fmt.Sprintf("%s/weather?lat=%f&lon=%f&appid=%s&units=metric",
		openWeatherBaseURL, lat, lon,
		config.GetEnv("WEATHER_API_KEY", ""),
	)

	var data owWeather
	if err := fetchJSON(apiURL, &data); err != nil {
		return CurrentWeather{}, errors.New("unable to fetch weather data")
	}

	return formatCurrentWeather(data), nil
}

// GetForecast aggregates the 3-hourly forecast into at most five daily
// entries with min/max temperature and averaged humidity and wind.
func GetForecast(city string) ([]ForecastDay, error) {
	apiURL := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric",
		openWeatherBaseURL,
		url.QueryEscape(city+",LK"),
		config.GetEnv("WEATHER_API_KEY", ""),
	)

	var data owForecast
	if err := fetchJSON(apiURL, &data); err != nil {
		return nil, errors.New("unable to fetch forecast data")
	}

	type bucket struct {
		temps      []float64
		humidity   []int
		windSpeeds []float64
		conditions string
	}

	var order []string
	buckets := map[string]*bucket{}
	for _, item := range data.List {
		date := time.Unix(item.Dt, 0).UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			if len(item.Weather) > 0 {
				b.conditions = item.Weather[0].Main
			}
			buckets[date] = b
			order = append(order, date)
		}
		b.temps = append(b.temps, item.Main.Temp)
		b.humidity = append(b.humidity, item.Main.Humidity)
		b.windSpeeds = append(b.windSpeeds, item.Wind.Speed)
	}

	var days []ForecastDay
	for _, date := range order {
		if len(days) == 5 {
			break
		}
		b := buckets[date]

		tempMax, tempMin := b.temps[0], b.temps[0]
		for _, t := range b.temps {
			tempMax = math.Max(tempMax, t)
			tempMin = math.Min(tempMin, t)
		}

		humiditySum := 0
		for _, h := range b.humidity {
			humiditySum += h
		}
		windSum := 0.0
		for _, w := range b.windSpeeds {
			windSum += w
		}

		days = append(days, ForecastDay{
			Date:         date,
			TempMax:      int(math.Round(tempMax)),
			TempMin:      int(math.Round(tempMin)),
			AvgHumidity:  int(math.Round(float64(humiditySum) / float64(len(b.humidity)))),
			AvgWindSpeed: int(math.Round(windSum / float64(len(b.windSpeeds)) * 3.6)),
			Conditions:   b.conditions,
		})
	}

	return days, nil
}

var sriLankaCities = []struct {
	Name   string
	Region string
}{
	{"Colombo", "West Coast"},
	{"Kandy", "Hill Country"},
	{"Jaffna", "North"},
	{"Galle", "South Coast"},
	{"Trincomalee", "East Coast"},
	{"Nuwara Eliya", "Hill Country"},
	{"Anuradhapura", "North Central"},
	{"Batticaloa", "East Coast"},
}

// GetSriLankaWeather fetches current conditions for the major cities in
// parallel. A city that fails reports an error entry instead of failing
// the whole sweep.
func GetSriLankaWeather() []CurrentWeather {
	results := make([]CurrentWeather, len(sriLankaCities))

	var wg sync.WaitGroup
	for i, city := range sriLankaCities {
		wg.Add(1)
		go func(i int, name, region string) {
			defer wg.Done()
			weather, err := GetCurrentWeather(name)
			if err != nil {
				results[i] = CurrentWeather{Location: name, Region: region, Error: "Unable to fetch data"}
				return
			}
			weather.Region = region
			results[i] = weather
		}(i, city.Name, city.Region)
	}
	wg.Wait()

	return results
}
