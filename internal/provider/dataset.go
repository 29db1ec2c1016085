package provider

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

// datasetFile is the on-disk YAML schema for a dataset rule provider. One file
// describes one manufacturer's rule table.
type datasetFile struct {
	Owner    string `yaml:"owner"`
	Patterns []struct {
		Type  string   `yaml:"type"`
		Match []string `yaml:"match"`
	} `yaml:"patterns"`
	Prefixes []struct {
		Prefix string `yaml:"prefix"`
		Type   string `yaml:"type"`
	} `yaml:"prefixes"`
	Series  string `yaml:"series"`  // regex with one capture group
	Package string `yaml:"package"` // regex with one capture group

	Attributes []struct {
		Name    string `yaml:"name"`
		Pattern string `yaml:"pattern"` // regex with one capture group
		Kind    string `yaml:"kind"`    // string | number | rkm | eia-capacitance
	} `yaml:"attributes"`

	Replacements [][]string `yaml:"replacements"`
}

// datasetAttr is one compiled attribute extractor.
type datasetAttr struct {
	name string
	re   *regexp.Regexp
	kind string
}

// DatasetProvider is a RuleProvider backed by a YAML rule table instead of
// compiled-in code. New manufacturers are data, not releases.
type DatasetProvider struct {
	baseProvider

	seriesRe  *regexp.Regexp
	packageRe *regexp.Regexp
	attrs     []datasetAttr
}

// LoadDataset parses one YAML rule table. Pattern sources are not compiled
// here; like the builtin tables they are validated at registration time so a
// bad pattern is a per-rule build report entry, not a load failure. Extraction
// regexes must compile, since a broken extractor silently degrades every
// classification.
func LoadDataset(path string) (*DatasetProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var file datasetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", filepath.Base(path), err)
	}
	if file.Owner == "" {
		return nil, fmt.Errorf("dataset %s: owner is required", filepath.Base(path))
	}

	owner := types.RuleOwnerID(strings.ToLower(file.Owner))
	p := &DatasetProvider{
		baseProvider: baseProvider{owner: owner},
	}

	seen := make(map[types.ComponentType]bool)
	for _, group := range file.Patterns {
		t := types.ComponentType(group.Type)
		for _, src := range group.Match {
			p.rules = append(p.rules, tableRule{Type: t, Source: src})
		}
		if !seen[t] {
			seen[t] = true
			p.supported = append(p.supported, t)
		}
		// Generic-type rules let the resolver offer the part as a fallback
		// candidate to other callers; the specific variant stays owned here.
		if base := t.BaseType(); base != t && !seen[base] {
			seen[base] = true
			p.supported = append(p.supported, base)
			for _, src := range group.Match {
				p.rules = append(p.rules, tableRule{Type: base, Source: src})
			}
		}
	}

	for _, pre := range file.Prefixes {
		p.prefixes = append(p.prefixes, types.PrefixRule{
			Prefix: strings.ToUpper(pre.Prefix),
			Owner:  owner,
			Type:   types.ComponentType(pre.Type),
		})
	}

	if file.Series != "" {
		if p.seriesRe, err = regexp.Compile(file.Series); err != nil {
			return nil, fmt.Errorf("dataset %s: series pattern: %w", filepath.Base(path), err)
		}
	}
	if file.Package != "" {
		if p.packageRe, err = regexp.Compile(file.Package); err != nil {
			return nil, fmt.Errorf("dataset %s: package pattern: %w", filepath.Base(path), err)
		}
	}

	for _, a := range file.Attributes {
		re, err := regexp.Compile(a.Pattern)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: attribute %q: %w", filepath.Base(path), a.Name, err)
		}
		kind := a.Kind
		if kind == "" {
			kind = "string"
		}
		p.attrs = append(p.attrs, datasetAttr{name: a.Name, re: re, kind: kind})
	}

	pairs := make([][2]string, 0, len(file.Replacements))
	for _, r := range file.Replacements {
		if len(r) != 2 {
			return nil, fmt.Errorf("dataset %s: replacement entries need exactly two MPNs", filepath.Base(path))
		}
		pairs = append(pairs, [2]string{types.NormalizeMPN(r[0]), types.NormalizeMPN(r[1])})
	}
	p.replacements = newPairSet(pairs)

	return p, nil
}

// LoadDatasetDir loads every *.yaml/*.yml rule table in dir, in sorted file
// order so the build phase stays deterministic.
func LoadDatasetDir(dir string) ([]RuleProvider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	providers := make([]RuleProvider, 0, len(names))
	for _, name := range names {
		p, err := LoadDataset(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, nil
}

// ExtractPackageCode implements RuleProvider.
func (p *DatasetProvider) ExtractPackageCode(mpn string) string {
	return firstGroup(p.packageRe, types.NormalizeMPN(mpn))
}

// ExtractSeries implements RuleProvider.
func (p *DatasetProvider) ExtractSeries(mpn string) string {
	return firstGroup(p.seriesRe, types.NormalizeMPN(mpn))
}

// ExtractAttributes implements RuleProvider.
func (p *DatasetProvider) ExtractAttributes(mpn string, _ types.ComponentType) map[string]types.AttributeValue {
	norm := types.NormalizeMPN(mpn)
	attrs := make(map[string]types.AttributeValue)
	for _, a := range p.attrs {
		raw := firstGroup(a.re, norm)
		if raw == "" {
			continue
		}
		switch a.kind {
		case "number":
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				attrs[a.name] = types.NumericValue(v)
			}
		case "rkm":
			if v, ok := parseRKM(raw); ok {
				attrs[a.name] = types.NumericValue(v)
			}
		case "eia-capacitance":
			if v, ok := eiaCapacitanceFarads(raw); ok {
				attrs[a.name] = types.NumericValue(v)
			}
		default:
			attrs[a.name] = types.StringValue(raw)
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func firstGroup(re *regexp.Regexp, s string) string {
	if re == nil {
		return ""
	}
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
