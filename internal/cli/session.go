package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/config"
	"github.com/rshade/greenstream/internal/engine"
	"github.com/rshade/greenstream/internal/i18n"
	"github.com/rshade/greenstream/internal/logging"
)

// Persistent flag names.
const (
	flagLang        = "lang"
	flagAssumptions = "assumptions"
)

// Limits on --set overrides.
const (
	maxOverrides      = 100
	maxOverrideKeyLen = 128
	maxOverrideValLen = 64
)

// keyValueParts is the expected number of parts when splitting key=value strings.
const keyValueParts = 2

// Override is one parsed --set flag.
type Override struct {
	Variable string
	Subkey   string
	Value    float64
}

// Name returns the override key as written on the command line.
func (o Override) Name() string {
	if o.Subkey == "" {
		return o.Variable
	}
	return o.Variable + "." + o.Subkey
}

// ParseOverrides parses --set flags of the form variable=value or
// variable.subkey=value. Values use "." as decimal mark.
// Exported for testing.
func ParseOverrides(sets []string) ([]Override, error) {
	if len(sets) > maxOverrides {
		return nil, fmt.Errorf("too many overrides: %d (max %d)", len(sets), maxOverrides)
	}

	out := make([]Override, 0, len(sets))
	for _, s := range sets {
		parts := strings.SplitN(s, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("invalid override %q: expected key=value", s)
		}
		key := strings.TrimSpace(parts[0])
		raw := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("override key cannot be empty in %q", s)
		}
		if len(key) > maxOverrideKeyLen {
			return nil, fmt.Errorf("override key too long: %d bytes (max %d)", len(key), maxOverrideKeyLen)
		}
		if len(raw) > maxOverrideValLen {
			return nil, fmt.Errorf("override value too long for %q: %d bytes (max %d)", key, len(raw), maxOverrideValLen)
		}

		variable, subkey, _ := strings.Cut(key, ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %q is not a number", key, raw)
		}
		out = append(out, Override{Variable: variable, Subkey: subkey, Value: v})
	}
	return out, nil
}

// ApplyOverrides sets every override on a and validates the result.
func ApplyOverrides(a *assumptions.Assumptions, overrides []Override) error {
	for _, o := range overrides {
		if err := a.Set(o.Variable, o.Subkey, o.Value); err != nil {
			return fmt.Errorf("--set %s: %w", o.Name(), err)
		}
	}
	if len(overrides) == 0 {
		return nil
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("after overrides: %w", err)
	}
	return nil
}

// resolveLang returns the --lang flag, else the configured language.
func resolveLang(cmd *cobra.Command) (i18n.Lang, error) {
	raw, _ := cmd.Flags().GetString(flagLang)
	if raw == "" {
		raw = config.GetGlobalConfig().Session.Language
	}
	return i18n.ParseLang(raw)
}

// resolveRole validates a role name, falling back to the configured role
// when empty.
func resolveRole(raw string) (engine.Role, error) {
	if raw == "" {
		raw = config.GetGlobalConfig().Session.Role
	}
	if raw == "" {
		return engine.RoleProducer, nil
	}
	if !engine.IsValidRole(raw) {
		return "", fmt.Errorf("unknown role %q (expected producer or consumer)", raw)
	}
	return engine.NormalizeRole(raw), nil
}

// loadAssumptions loads the --assumptions file, else the configured file,
// else the built-in defaults.
func loadAssumptions(cmd *cobra.Command) (*assumptions.Assumptions, error) {
	path, _ := cmd.Flags().GetString(flagAssumptions)
	if path == "" {
		path = config.GetAssumptionsPath()
	}
	return loadAssumptionsFrom(cmd.Context(), path)
}

func loadAssumptionsFrom(ctx context.Context, path string) (*assumptions.Assumptions, error) {
	log := logging.FromContext(ctx)
	if path == "" {
		log.Debug().Ctx(ctx).Msg("using built-in assumptions")
		return assumptions.LoadDefault()
	}
	a, err := assumptions.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading assumptions: %w", err)
	}
	return a, nil
}

// reportGroups logs and prints the percent groups that do not add up to
// their target. The engine renormalizes them anyway.
func reportGroups(cmd *cobra.Command, a *assumptions.Assumptions, lang i18n.Lang) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	for _, c := range assumptions.CheckGroups(a, assumptions.DefaultGroups()) {
		if c.Status == assumptions.GroupOK {
			continue
		}
		log.Warn().Ctx(ctx).
			Str("variable", c.Group.Variable).
			Float64("sum", c.Sum).
			Float64("target", c.Group.Target).
			Msg("percent group does not add up, shares are renormalized")
		f := lang.Formatter()
		cmd.PrintErrf("Warning: %s: %s %% (expected %s %%)\n",
			i18n.T(lang, c.Group.Variable), f.Float(c.Sum, 1), f.Float(c.Group.Target, 0))
	}
}
