// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the quote file.
package config

import (
	"fmt"
	"io"

	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for quote-engine: the financing
// programs on offer, the quotes to compute against them, and runtime options.
type Configuration struct {
	TaxRate  float64 `yaml:"taxRate,omitempty"`
	Programs []Program
	Quotes   []Quote
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Program is one financing program record as it appears in the quote file.
// Rate maps are keyed by term in months; the keys arrive as strings from
// YAML and are parsed during conversion.
type Program struct {
	Name         string
	Brand        string
	Model        string
	Trim         string
	ModelYear    int
	ConsumerCash float64
	BonusCash    float64
	Option1Rates map[string]float64
	Option2Rates map[string]float64
}

// Accessory is one accessory line item on a quote.
type Accessory struct {
	Name  string
	Price float64
}

// Quote holds the user-supplied inputs for one calculation; it references a
// program by name.
type Quote struct {
	Name              string
	Program           string
	VehiclePrice      float64
	Term              int // months
	Frequency         string
	CashDown          float64
	TradeInValue      float64
	TradeInDebt       float64
	DocumentationFee  float64
	TireLevy          float64
	RegistrationFee   float64
	Accessories       []Accessory
	BonusCashOverride *float64
	// TargetPayment, when positive, asks the solver for the minimum cash
	// down that brings the payment at this quote's frequency under it.
	TargetPayment float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, e.g. an HTTP request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.applyDefaults()
	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if c.TaxRate <= 0 {
		c.TaxRate = constants.DefaultTaxRate
	}
	for i := range c.Quotes {
		if c.Quotes[i].Frequency == "" {
			c.Quotes[i].Frequency = constants.FrequencyMonthly
		}
	}
}

// ProgramByName finds a program record by its name; nil when absent.
func (c *Configuration) ProgramByName(name string) *Program {
	for i := range c.Programs {
		if c.Programs[i].Name == name {
			return &c.Programs[i]
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var quotes []validation.QuoteInfo
	for _, quote := range c.Quotes {
		info := validation.QuoteInfo{
			Name:         quote.Name,
			ProgramName:  quote.Program,
			VehiclePrice: quote.VehiclePrice,
			Term:         quote.Term,
			Frequency:    quote.Frequency,
			TradeInValue: quote.TradeInValue,
			TradeInDebt:  quote.TradeInDebt,
		}
		if program := c.ProgramByName(quote.Program); program != nil {
			info.ProgramFound = true
			info.HasSecondOption = len(program.Option2Rates) > 0
			info.ConsumerCash = program.ConsumerCash
		}
		quotes = append(quotes, info)
	}

	validator := &validation.QuoteValidator{Quotes: quotes}
	return validator.ValidateAll()
}
