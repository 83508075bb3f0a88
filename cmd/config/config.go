package config

import (
	"errors"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Parser struct {

	// TimeFormat is a format for time.Parse function
	// See https://golang.org/pkg/time/#Time.Format
	//
	// Example: "15:04" for taking only hours and minutes
	TimeFormat string `env:"TIME_FORMAT" env-default:"15:04"`

	// FieldSeparator is a separator between course fields
	//
	// Example: ";" for "CS101;Intro;Ada Lovelace;Mon,Wed;09:00;10:15"
	FieldSeparator string `env:"FIELD_SEPARATOR" env-default:";"`

	// DaysSeparator is a separator between meeting days
	//
	// Example: "," for "Mon,Wed"
	DaysSeparator string `env:"DAYS_SEPARATOR" env-default:","`

	// CommentPrefix marks lines that are skipped
	CommentPrefix string `env:"COMMENT_PREFIX" env-default:"#"`
}

type Exporter struct {

	// Location is an IANA time zone name for calendar timestamps
	//
	// Example: "Europe/Berlin"
	Location string `env:"CALENDAR_LOCATION" env-default:"UTC"`

	ProductID string `env:"CALENDAR_PRODUCT_ID" env-default:"-//course-catalog//EN"`

	// TermWeeks is how many weeks a recurring course event spans
	TermWeeks int `env:"TERM_WEEKS" env-default:"15"`
}

// LoadDotEnv loads variables from the given .env files into the process environment.
// Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func NewParserConfig() (*Parser, error) {
	var cfg Parser
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func NewExporterConfig() (*Exporter, error) {
	var cfg Exporter
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
