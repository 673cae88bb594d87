package game

import "github.com/pthm-cable/lanterns/config"

// Options configures a Game.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int // scene ticks per UpdateHeadless call
}

func (o Options) config() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.Cfg()
}
