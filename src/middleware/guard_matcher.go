package middleware

import (
	_ "embed"
	"fmt"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed guard_paths.yaml
var guardPathsYAML []byte

// MatcherConfig lists the path sets consulted by the route guard.
type MatcherConfig struct {
	ProtectedPaths []string `yaml:"protectedPaths"`
	PublicPaths    []string `yaml:"publicPaths"`
	AdminOnlyPaths []string `yaml:"adminOnlyPaths"`
	AuthPaths      []string `yaml:"authPaths"`
	// ExactPaths are protected entries that match only the identical path.
	ExactPaths []string `yaml:"exactPaths"`
}

// DefaultMatcherConfig is used when the embedded file cannot be read.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		ProtectedPaths: []string{"/dashboard", "/survey", "/employee", "/alumni", "/faculty", "/program-study", "/profile"},
		PublicPaths:    []string{"/survey/*/supervisor"},
		AdminOnlyPaths: []string{"/employee", "/faculty", "/program-study"},
		AuthPaths:      []string{"/login", "/forgot-password"},
		ExactPaths:     []string{"/dashboard"},
	}
}

// ParseMatcherConfig decodes a YAML matcher configuration.
func ParseMatcherConfig(data []byte) (MatcherConfig, error) {
	var cfg MatcherConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatcherConfig{}, fmt.Errorf("parse guard paths: %w", err)
	}
	for _, p := range cfg.PublicPaths {
		if !strings.HasPrefix(p, "/") {
			return MatcherConfig{}, fmt.Errorf("public path %q must start with /", p)
		}
	}
	return cfg, nil
}

// EmbeddedMatcherConfig returns the compiled-in guard_paths.yaml.
func EmbeddedMatcherConfig() MatcherConfig {
	cfg, err := ParseMatcherConfig(guardPathsYAML)
	if err != nil {
		log.Println("⚠️ [RouteGuard] embedded guard paths unreadable, using defaults:", err)
		return DefaultMatcherConfig()
	}
	return cfg
}

func (m MatcherConfig) isAuthPath(path string) bool {
	return hasAnyPrefix(path, m.AuthPaths)
}

func (m MatcherConfig) isPublicException(path string) bool {
	for _, pattern := range m.PublicPaths {
		if matchSegments(pattern, path) {
			return true
		}
	}
	return false
}

func (m MatcherConfig) isProtected(path string) bool {
	for _, p := range m.ProtectedPaths {
		if m.isExact(p) {
			if path == p {
				return true
			}
			continue
		}
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func (m MatcherConfig) isAdminOnly(path string) bool {
	return hasAnyPrefix(path, m.AdminOnlyPaths)
}

func (m MatcherConfig) isExact(p string) bool {
	for _, e := range m.ExactPaths {
		if e == p {
			return true
		}
	}
	return false
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// matchSegments matches a pattern against the whole path segment by segment.
// A "*" segment matches exactly one non-empty segment. One trailing slash on
// the path is ignored.
func matchSegments(pattern, path string) bool {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return false
	}
	for i, seg := range ps {
		if seg == "*" {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if seg != xs[i] {
			return false
		}
	}
	return true
}
