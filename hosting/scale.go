package hosting

import (
	"context"
	"net/http"

	"github.com/hoverctl/hover/config"
	"github.com/hoverctl/hover/schema"
)

// scaleTypes is the allowed set for the optional --scale-type flag.
var scaleTypes = schema.Literal("vm", "regions")

// ScaleArgs are the raw scaling flags from the command line.
type ScaleArgs struct {
	VMType    string
	Regions   []string
	ScaleType string
}

// Valid reports whether the args name at least one scaling target.
func (a ScaleArgs) Valid() bool {
	return a.VMType != "" || len(a.Regions) > 0
}

// RegionCounts folds the repeatable regions flag into region → instance
// count. Naming a region twice requests two instances there.
func (a ScaleArgs) RegionCounts() map[string]int {
	if len(a.Regions) == 0 {
		return nil
	}
	counts := make(map[string]int, len(a.Regions))
	for _, r := range a.Regions {
		counts[r]++
	}
	return counts
}

// Overrides expresses the args as config field overrides, letting
// Config.WithOverrides re-run schema validation over them.
func (a ScaleArgs) Overrides() map[string]any {
	overrides := make(map[string]any)
	if a.VMType != "" {
		overrides["vmtype"] = a.VMType
	}
	if counts := a.RegionCounts(); counts != nil {
		overrides["regions"] = counts
	}
	return overrides
}

// ScaleParams is the request body for ScaleApp.
type ScaleParams struct {
	VMType    string         `json:"vmtype,omitempty"`
	Regions   map[string]int `json:"regions,omitempty"`
	ScaleType string         `json:"scale_type,omitempty"`
}

// ScaleParamsFrom assembles scale parameters from a validated config record
// (flag overrides already merged in by the caller) plus the remaining args.
// Returns ErrNoScaleTarget when nothing names a target, and a validation
// error for a scale type outside the allowed set.
func ScaleParamsFrom(cfg *config.Config, args ScaleArgs) (ScaleParams, error) {
	params := ScaleParams{
		VMType: cfg.VMType.OrDefault(""),
	}
	if regions, ok := cfg.Regions.Get(); ok {
		params.Regions = regions
	}
	if params.VMType == "" && len(params.Regions) == 0 {
		return ScaleParams{}, ErrNoScaleTarget
	}

	if args.ScaleType != "" {
		if err := schema.Validate("scale-type", args.ScaleType, scaleTypes); err != nil {
			return ScaleParams{}, err
		}
		params.ScaleType = args.ScaleType
	}
	return params, nil
}

// ScaleApp applies new scale parameters to an app.
func (c *Client) ScaleApp(ctx context.Context, appID string, params ScaleParams) error {
	return c.do(ctx, http.MethodPost, "/apps/"+appID+"/scale", nil, params, nil)
}
