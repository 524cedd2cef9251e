package config

import (
	"strings"
	"testing"
)

func TestToRateSet(t *testing.T) {
	set, err := ToRateSet(map[string]float64{"36": 3.99, "60": 4.99, "72": 5.99})
	if err != nil {
		t.Fatalf("ToRateSet() error = %v", err)
	}
	if set[36] != 3.99 || set[60] != 4.99 || set[72] != 5.99 {
		t.Errorf("ToRateSet() = %v", set)
	}

	if set, err := ToRateSet(nil); err != nil || set != nil {
		t.Errorf("ToRateSet(nil) = %v, %v, expected nil, nil", set, err)
	}
	if set, err := ToRateSet(map[string]float64{}); err != nil || set != nil {
		t.Errorf("ToRateSet(empty) = %v, %v, expected nil, nil", set, err)
	}

	if _, err := ToRateSet(map[string]float64{"five years": 4.99}); err == nil {
		t.Errorf("ToRateSet() should reject non-numeric term keys")
	}
	if _, err := ToRateSet(map[string]float64{"60": -1.0}); err == nil {
		t.Errorf("ToRateSet() should reject negative rates")
	}
}

func TestToEngineProgram(t *testing.T) {
	conf := loadSample(t)

	program, err := conf.ProgramByName("Cherokee 2025").ToEngineProgram()
	if err != nil {
		t.Fatalf("ToEngineProgram() error = %v", err)
	}
	if program.Brand != "Jeep" || program.ConsumerCash != 5000 || program.BonusCash != 1000 {
		t.Errorf("ToEngineProgram() = %+v", program)
	}
	if program.Option1Rates[60] != 4.99 {
		t.Errorf("Option1Rates[60] = %v, expected 4.99", program.Option1Rates[60])
	}
	if !program.HasSecondOption() {
		t.Errorf("Cherokee program should carry a second option")
	}

	single, err := conf.ProgramByName("Hornet 2025").ToEngineProgram()
	if err != nil {
		t.Fatalf("ToEngineProgram() error = %v", err)
	}
	if single.HasSecondOption() {
		t.Errorf("Hornet program should not carry a second option")
	}

	noRates := &Program{Name: "Broken"}
	if _, err := noRates.ToEngineProgram(); err == nil {
		t.Errorf("ToEngineProgram() should fail without option 1 rates")
	}
}

func TestToEngineInput(t *testing.T) {
	conf := loadSample(t)
	program, err := conf.ProgramByName("Cherokee 2025").ToEngineProgram()
	if err != nil {
		t.Fatalf("ToEngineProgram() error = %v", err)
	}

	quote := &conf.Quotes[0]
	input := quote.ToEngineInput(program)

	if input.VehiclePrice != 55000 || input.TermMonths != 60 || input.Frequency != "biweekly" {
		t.Errorf("ToEngineInput() basics mismatch: %+v", input)
	}
	if input.TaxableFees() != 499+22.5+380 {
		t.Errorf("TaxableFees() = %v", input.TaxableFees())
	}
	if input.AccessoriesTotal() != 750 {
		t.Errorf("AccessoriesTotal() = %v, expected 750", input.AccessoriesTotal())
	}
	if input.BonusCashOverride == nil || *input.BonusCashOverride != 750 {
		t.Errorf("BonusCashOverride = %v, expected 750", input.BonusCashOverride)
	}

	// The override pointer is copied, not shared with the config struct.
	*quote.BonusCashOverride = 0
	if *input.BonusCashOverride != 750 {
		t.Errorf("BonusCashOverride should not alias the configuration value")
	}
}

func TestResolveQuote(t *testing.T) {
	conf := loadSample(t)

	input, err := conf.ResolveQuote(&conf.Quotes[0])
	if err != nil {
		t.Fatalf("ResolveQuote() error = %v", err)
	}
	if input.Program == nil || input.Program.Model != "Grand Cherokee" {
		t.Errorf("ResolveQuote() program = %+v", input.Program)
	}

	orphan := Quote{Name: "Orphan", Program: "Discontinued", VehiclePrice: 1}
	if _, err := conf.ResolveQuote(&orphan); err == nil || !strings.Contains(err.Error(), "unknown program") {
		t.Errorf("ResolveQuote() error = %v, expected unknown program", err)
	}
}
