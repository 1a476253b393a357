package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Route limits one method and path. A Path ending in "/" matches every path
// under it.
type Route struct {
	Path   string
	Method string
	Limit  int // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int // defaults to Limit
}

// Config holds the limiter settings
type Config struct {
	Enabled         bool
	Default         Route
	Routes          []Route
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
}

// DefaultRoutes throttles the model-backed endpoints hardest. Health and the
// niche catalogue are unlimited.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/health", Method: "GET", Limit: 0},
		{Path: "/v1/niches", Method: "GET", Limit: 0},
		{Path: "/v1/optimize", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/v1/rewrite", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/v1/suggest", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/v1/parse/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

// DefaultConfig returns the settings used when no environment overrides exist.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Default:         Route{Limit: 600, Window: time.Minute},
		Routes:          DefaultRoutes(),
		CleanupInterval: 5 * time.Minute,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
	}
}

// LoadConfig reads CV_RATE_LIMIT_* variables on top of DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool("CV_RATE_LIMIT_ENABLED", cfg.Enabled)
	cfg.Default.Limit = envInt("CV_RATE_LIMIT_DEFAULT_LIMIT", cfg.Default.Limit)
	cfg.Default.Window = envDuration("CV_RATE_LIMIT_DEFAULT_WINDOW", cfg.Default.Window)
	cfg.CleanupInterval = envDuration("CV_RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = parseIPList(os.Getenv("CV_RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("CV_RATE_LIMIT_BLACKLIST"))
	if limit := envInt("CV_RATE_LIMIT_MODEL_PER_HOUR", -1); limit >= 0 {
		for i := range cfg.Routes {
			switch cfg.Routes[i].Path {
			case "/v1/optimize", "/v1/rewrite", "/v1/suggest":
				cfg.Routes[i].Limit = limit
			}
		}
	}
	return cfg
}

// Match returns the route of path and method: an exact match first, then
// the longest prefix route, then Default.
func (c *Config) Match(path, method string) Route {
	var best *Route
	for i := range c.Routes {
		r := &c.Routes[i]
		if r.Method != method {
			continue
		}
		if r.Path == path {
			return *r
		}
		if strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			if best == nil || len(r.Path) > len(best.Path) {
				best = r
			}
		}
	}
	if best != nil {
		return *best
	}
	def := c.Default
	def.Path = "*"
	return def
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func parseIPList(list string) map[string]bool {
	out := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			out[ip] = true
		}
	}
	return out
}
