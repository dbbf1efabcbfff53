package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/Litecoindark/LTCD/errcode"
	"github.com/Litecoindark/LTCD/model/chainparams"
)

const (
	envPrefix          = "ltcd"
	defaultConfigName  = "conf.yml"
	defaultDataDirName = ".ltcd"

	DefaultCheckpointsEnabled = true
	DefaultLogLevel           = "info"
	DefaultMetricsAddr        = ":9433"
)

var DefaultLogModules = []string{"pow", "checkpoint", "chain"}

var Cfg *Configuration

type Configuration struct {
	DataDir string
	Chain   struct {
		TestNet     bool
		RegTest     bool
		Checkpoints bool
	}
	Log struct {
		Level    string
		Module   []string
		FileName string
		Console  bool
	}
	Metrics struct {
		// empty disables the prometheus endpoint
		Addr string
	}
	// file of hex encoded headers to import, one per line
	HeadersFile string
}

// Network returns the chain parameters name selected by the configuration.
func (c *Configuration) Network() string {
	return chainparams.NetworkName(c.Chain.TestNet, c.Chain.RegTest)
}

func (c *Configuration) CheckpointsEnabled() bool {
	return c.Chain.Checkpoints
}

func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDataDirName
	}
	return filepath.Join(home, defaultDataDirName)
}

// InitConfig parses the command line, then layers the yaml file and
// LTCD_* environment variables under it. Flags given on the command line
// always win.
func InitConfig(args []string) (*Configuration, error) {
	opts, err := InitArgs(args)
	if err != nil {
		return nil, err
	}
	if opts.TestNet && opts.RegTest {
		return nil, errcode.New(errcode.ErrConfNetwork)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	v.SetDefault("datadir", DefaultDataDir())
	v.SetDefault("chain.testnet", false)
	v.SetDefault("chain.regtest", false)
	v.SetDefault("chain.checkpoints", DefaultCheckpointsEnabled)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.module", DefaultLogModules)
	v.SetDefault("log.filename", "debug.log")
	v.SetDefault("log.console", false)
	v.SetDefault("metrics.addr", DefaultMetricsAddr)

	if opts.DataDir != "" {
		v.Set("datadir", opts.DataDir)
	}

	configFile := opts.ConfigFile
	explicit := configFile != ""
	if !explicit {
		configFile = filepath.Join(v.GetString("datadir"), defaultConfigName)
	}
	if err := readConfigFile(v, configFile, explicit); err != nil {
		return nil, err
	}

	config := &Configuration{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}

	if opts.DataDir != "" {
		config.DataDir = opts.DataDir
	}
	if opts.TestNet {
		config.Chain.TestNet = true
		config.Chain.RegTest = false
	}
	if opts.RegTest {
		config.Chain.RegTest = true
		config.Chain.TestNet = false
	}
	if opts.NoCheckpoints {
		config.Chain.Checkpoints = false
	}
	if opts.LogLevel != "" {
		config.Log.Level = opts.LogLevel
	}
	if opts.MetricsAddr != "" {
		config.Metrics.Addr = opts.MetricsAddr
	}
	if opts.Headers != "" {
		config.HeadersFile = opts.Headers
	}
	if config.Chain.TestNet && config.Chain.RegTest {
		return nil, errcode.New(errcode.ErrConfNetwork)
	}

	return config, nil
}

func readConfigFile(v *viper.Viper, path string, mustExist bool) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return errors.Wrapf(err, "open config file %s", path)
	}
	defer file.Close()

	if err := v.ReadConfig(file); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}
