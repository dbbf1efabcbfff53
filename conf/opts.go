package conf

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type Opts struct {
	DataDir    string `long:"datadir" description:"specified program data dir"`
	ConfigFile string `long:"conf" description:"path to a yaml configuration file (default: <datadir>/conf.yml)"`

	RegTest bool `long:"regtest" description:"initiate regtest"`
	TestNet bool `long:"testnet" description:"initiate testnet"`

	NoCheckpoints bool   `long:"nocheckpoints" description:"Disable built-in checkpoints.  Don't do this unless you know what you're doing."`
	LogLevel      string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	MetricsAddr string `long:"metricsaddr" description:"listen address of the prometheus endpoint"`
	Headers     string `long:"headers" description:"import hex encoded block headers from this file, one per line"`
}

func InitArgs(args []string) (*Opts, error) {
	opts := new(Opts)
	_, err := flags.ParseArgs(opts, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	return opts, nil
}

func (opts *Opts) String() string {
	return fmt.Sprintf("datadir:%s regtest:%v testnet:%v nocheckpoints:%v",
		opts.DataDir, opts.RegTest, opts.TestNet, opts.NoCheckpoints)
}
