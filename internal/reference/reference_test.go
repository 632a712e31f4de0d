package reference

import (
	"encoding/json"
	"testing"
)

func TestProductionRateFallsBackToDefault(t *testing.T) {
	ref := Default()

	if rate := ref.ProductionRate(SurfaceSteel, ConditionGood); rate != 150 {
		t.Fatalf("steel/good rate = %v, want 150", rate)
	}
	if rate := ref.ProductionRate("fiberglass", ConditionGood); rate != ref.DefaultProductionRate {
		t.Fatalf("unknown surface rate = %v, want default %v", rate, ref.DefaultProductionRate)
	}
}

func TestMethodEfficiencyFallsBackToDefault(t *testing.T) {
	ref := Default()

	if eff := ref.MethodEfficiency("brush"); eff != 90 {
		t.Fatalf("brush efficiency = %v, want 90", eff)
	}
	if eff := ref.MethodEfficiency("trowel"); eff != ref.DefaultTransferEfficiency {
		t.Fatalf("unknown method efficiency = %v, want default %v", eff, ref.DefaultTransferEfficiency)
	}
}

func TestDefaultIsIndependentPerCall(t *testing.T) {
	first := Default()
	first.ProductionRates[RateKey{SurfaceSteel, ConditionGood}] = 1

	second := Default()
	if second.ProductionRates[RateKey{SurfaceSteel, ConditionGood}] != 150 {
		t.Fatalf("Default() shares map state between calls")
	}
}

func TestRateKeyJSONRoundTrip(t *testing.T) {
	ref := Default()

	encoded, err := json.Marshal(ref.ProductionRates)
	if err != nil {
		t.Fatalf("marshal production rates: %v", err)
	}

	var decoded map[RateKey]float64
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal production rates: %v", err)
	}

	key := RateKey{Surface: SurfaceConcrete, Condition: ConditionPoor}
	if decoded[key] != ref.ProductionRates[key] {
		t.Fatalf("round trip lost %v: got %v, want %v", key, decoded[key], ref.ProductionRates[key])
	}
}
