package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Business constants and standard settings; the defaults below are
//   the contractual values the shop operates under (service radius, lead time,
//   tax rate, fee schedules) and only change with the business, not per deploy
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Workshop WorkshopConfig
	Booking  BookingConfig
	Pricing  PricingConfig
	Calendar CalendarConfig
	Payment  PaymentConfig
	Mail     MailConfig
	Geo      GeoConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Toronto"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Toronto"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60 (EDT)
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// WorkshopConfig is the fixed origin every travel-fee distance is measured
// from. The street address is confidential and must never appear in a
// customer-facing payload.
type WorkshopConfig struct {
	Address  string  `envconfig:"WORKSHOP_ADDRESS" default:"10424 Av. de Bruxelles, Montréal-nord, QC H1H 4R3, Canada"`
	Lat      float64 `envconfig:"WORKSHOP_LAT" default:"45.6426"`
	Lng      float64 `envconfig:"WORKSHOP_LNG" default:"-73.6274"`
	TimeZone string  `envconfig:"WORKSHOP_TIMEZONE" default:"America/Toronto"`
}

// BookingConfig carries the scheduling contract: open 8h-18h every day of the
// week, three canonical 3h slots, 72h minimum lead time, 100km service
// radius, cancellation refused under ~24h before the appointment.
type BookingConfig struct {
	OpenHour          int           `envconfig:"BOOKING_OPEN_HOUR" default:"8"`
	CloseHour         int           `envconfig:"BOOKING_CLOSE_HOUR" default:"18"`
	LeadTime          time.Duration `envconfig:"BOOKING_LEAD_TIME" default:"72h"`
	MaxRadiusKm       float64       `envconfig:"BOOKING_MAX_RADIUS_KM" default:"100"`
	CancelCutoffHours float64       `envconfig:"BOOKING_CANCEL_CUTOFF_HOURS" default:"23.98"` // 23h59
	SlotDurationMins  int           `envconfig:"BOOKING_SLOT_DURATION_MINS" default:"180"`
}

// PricingConfig holds both travel-fee schedules. The estimate and booking
// flows intentionally run on different rate/cap pairs; do not unify them
// without product confirmation.
type PricingConfig struct {
	TaxRate            float64 `envconfig:"PRICING_TAX_RATE" default:"0.14975"` // GST 5% + QST 9.975%
	EstimateRatePerKm  float64 `envconfig:"PRICING_ESTIMATE_RATE_PER_KM" default:"0.61"`
	EstimateTravelCap  float64 `envconfig:"PRICING_ESTIMATE_TRAVEL_CAP" default:"55"`
	BookingRatePerKm   float64 `envconfig:"PRICING_BOOKING_RATE_PER_KM" default:"0.76"`
	BookingTravelCap   float64 `envconfig:"PRICING_BOOKING_TRAVEL_CAP" default:"76"`
	PartsSearchFlatFee float64 `envconfig:"PRICING_PARTS_SEARCH_FEE" default:"20"`
}

type CalendarConfig struct {
	BaseURL     string        `envconfig:"CALENDAR_BASE_URL" default:"https://www.googleapis.com/calendar/v3"`
	CalendarID  string        `envconfig:"CALENDAR_ID" default:"primary"`
	AccessToken string        `envconfig:"CALENDAR_ACCESS_TOKEN" default:""`
	Timeout     time.Duration `envconfig:"CALENDAR_TIMEOUT" default:"8s"`
}

type PaymentConfig struct {
	BaseURL     string        `envconfig:"PAYMENT_BASE_URL" default:"https://connect.squareupsandbox.com"`
	AccessToken string        `envconfig:"PAYMENT_ACCESS_TOKEN" default:""`
	Currency    string        `envconfig:"PAYMENT_CURRENCY" default:"CAD"`
	Timeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
}

type MailConfig struct {
	BaseURL   string        `envconfig:"MAIL_BASE_URL" default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID string        `envconfig:"MAIL_SERVICE_ID" default:""`
	PublicKey string        `envconfig:"MAIL_PUBLIC_KEY" default:""`
	Timeout   time.Duration `envconfig:"MAIL_TIMEOUT" default:"5s"`
}

type GeoConfig struct {
	MatrixBaseURL    string        `envconfig:"GEO_MATRIX_BASE_URL" default:"https://maps.googleapis.com/maps/api/distancematrix/json"`
	MatrixAPIKey     string        `envconfig:"GEO_MATRIX_API_KEY" default:""`
	GeocodeBaseURL   string        `envconfig:"GEO_GEOCODE_BASE_URL" default:"https://nominatim.openstreetmap.org/search"`
	GeocodeCountry   string        `envconfig:"GEO_GEOCODE_COUNTRY" default:"ca"`
	GeocodeUserAgent string        `envconfig:"GEO_GEOCODE_USER_AGENT" default:"MechMobile-Distance-Calculator/1.0"`
	Timeout          time.Duration `envconfig:"GEO_TIMEOUT" default:"5s"`
	DebounceWindow   time.Duration `envconfig:"GEO_DEBOUNCE_WINDOW" default:"1200ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Toronto",
			MaxConns: 5,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Toronto",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -14400,
		},
		Workshop: WorkshopConfig{
			Address:  "10424 Av. de Bruxelles, Montréal-nord, QC H1H 4R3, Canada",
			Lat:      45.6426,
			Lng:      -73.6274,
			TimeZone: "America/Toronto",
		},
		Booking: BookingConfig{
			OpenHour:          8,
			CloseHour:         18,
			LeadTime:          72 * time.Hour,
			MaxRadiusKm:       100,
			CancelCutoffHours: 23.98,
			SlotDurationMins:  180,
		},
		Pricing: PricingConfig{
			TaxRate:            0.14975,
			EstimateRatePerKm:  0.61,
			EstimateTravelCap:  55,
			BookingRatePerKm:   0.76,
			BookingTravelCap:   76,
			PartsSearchFlatFee: 20,
		},
	}
}
