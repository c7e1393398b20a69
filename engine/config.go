package engine

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v2"
)

const (
	defaultTrackerListURL = "https://raw.githubusercontent.com/ngosang/trackerslist/master/trackers_all.txt"
	defaultBodyLimit      = 64 * 1024
)

type Config struct {
	OutputFile      string        `yaml:"OutputFile"`
	TrackerListURLs []string      `yaml:"TrackerListURLs"`
	SkipTrackers    []string      `yaml:"SkipTrackers"`
	MaxWorkers      int           `yaml:"MaxWorkers"`
	MaxResponseTime time.Duration `yaml:"MaxResponseTime"`
	HTTPTimeout     time.Duration `yaml:"HTTPTimeout"`
	UDPTimeout      time.Duration `yaml:"UDPTimeout"`
	MaxBodySize     string        `yaml:"MaxBodySize"`
	ProbeRate       string        `yaml:"ProbeRate"`
	ProbeDebug      bool          `yaml:"ProbeDebug"`
}

func InitConf(specPath string) (*Config, error) {

	viper.SetConfigName("simple-trackercheck")
	viper.AddConfigPath("/etc/simple-trackercheck/")
	viper.AddConfigPath("/etc/")
	viper.AddConfigPath("$HOME/.simple-trackercheck")
	viper.AddConfigPath(".")

	viper.SetDefault("OutputFile", "valid_trackers.txt")
	viper.SetDefault("TrackerListURLs", []string{defaultTrackerListURL})
	viper.SetDefault("SkipTrackers", []string{
		// known to hang the udp prober until the full timeout
		"udp://tracker.theoks.net:6969/announce",
	})
	viper.SetDefault("MaxWorkers", 50)
	viper.SetDefault("MaxResponseTime", "0")
	viper.SetDefault("HTTPTimeout", "5s")
	viper.SetDefault("UDPTimeout", "10s")
	viper.SetDefault("MaxBodySize", "64kb")
	viper.SetDefault("ProbeRate", "unlimited")
	viper.SetDefault("ProbeDebug", false)

	// user specific config path
	if stat, err := os.Stat(specPath); stat != nil && err == nil {
		viper.SetConfigFile(specPath)
	}

	configExists := true
	if err := viper.ReadInConfig(); err != nil {
		if strings.Contains(err.Error(), "Not Found") {
			configExists = false
			if specPath == "" {
				specPath = "./simple-trackercheck.yaml"
			}
			viper.SetConfigFile(specPath)
		} else {
			return nil, err
		}
	}

	c := &Config{}
	viper.Unmarshal(c)

	cf := viper.ConfigFileUsed()
	log.Println("[config] selected config file: ", cf)
	if !configExists {
		c.WriteYaml()
		log.Println("[config] default config file written: ", cf)
	}

	return c, nil
}

func (c *Config) WriteYaml() error {
	cf := viper.ConfigFileUsed()
	if cf == "" {
		return errors.New("no config file selected")
	}
	out, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(cf, out, 0644)
}

// RateLimiter gates probe dispatch; unlimited unless ProbeRate is set.
func (c *Config) RateLimiter() *rate.Limiter {
	l, err := probeRateLimiter(c.ProbeRate)
	if err != nil {
		log.Printf("ProbeRate [%s] unreconized, set as unlimited", c.ProbeRate)
		return rate.NewLimiter(rate.Inf, 0)
	}
	return l
}

// BodyLimit is the max number of tracker reply bytes the http prober reads.
func (c *Config) BodyLimit() int64 {
	var v datasize.ByteSize
	if err := v.UnmarshalText([]byte(strings.TrimSpace(c.MaxBodySize))); err != nil || v == 0 {
		return defaultBodyLimit
	}
	return int64(v)
}

func probeRateLimiter(rstr string) (*rate.Limiter, error) {
	var rateSize int
	rstr = strings.ToLower(strings.TrimSpace(rstr))
	switch rstr {
	case "slow":
		// ~10 probes/s
		rateSize = 10
	case "medium":
		// ~50 probes/s
		rateSize = 50
	case "fast":
		// ~200 probes/s
		rateSize = 200
	case "unlimited", "0", "":
		// unlimited
		return rate.NewLimiter(rate.Inf, 0), nil
	default:
		v, err := strconv.Atoi(rstr)
		if err != nil || v <= 0 {
			return nil, errors.New("invalid probes per second")
		}
		rateSize = v
	}
	return rate.NewLimiter(rate.Limit(rateSize), rateSize), nil
}
