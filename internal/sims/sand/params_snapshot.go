package sand

import (
	"strconv"

	"sand-ca/internal/core"
)

// Parameters exposes the current tunables for HUD display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("fire_spread_chance", "Fire spread chance", params.FireSpreadChance),
				floatParam("fire_smoke_chance", "Fire smoke chance", params.FireSmokeChance),
				floatParam("steam_condense_chance", "Steam condense chance", params.SteamCondenseChance),
			},
		},
		{
			Name: "Paint",
			Params: []core.Parameter{
				floatParam("spray_density", "Spray density", params.SprayDensity),
				boolParam("paint_overwrite", "Paint overwrite", params.PaintOverwrite),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
