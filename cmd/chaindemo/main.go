// Command chaindemo exercises the chainkit packages: composition chains,
// the size adapter, mask filtering, the object pool, and the LCG sequence.
package main

import (
	"fmt"
	"os"

	"github.com/kbukum/chainkit/chain"
	"github.com/kbukum/chainkit/config"
	"github.com/kbukum/chainkit/logger"
	"github.com/kbukum/chainkit/mask"
	"github.com/kbukum/chainkit/pool"
	"github.com/kbukum/chainkit/rng"
	"github.com/kbukum/chainkit/version"
)

// DemoConfig is the chaindemo command configuration.
type DemoConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Chain struct {
		Immediate bool `yaml:"immediate" mapstructure:"immediate"`
	} `yaml:"chain" mapstructure:"chain"`
	RNG rng.Params `yaml:"rng" mapstructure:"rng"`
}

// ApplyDefaults applies defaults for all sections.
func (c *DemoConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "chaindemo"
	}
	c.ServiceConfig.ApplyDefaults()
	if c.RNG.A == 0 {
		c.RNG = rng.Params{A: 0.9, C: 5, M: 7, Seed: 0.1, Epsilon: 0.25}
	}
	c.RNG.ApplyDefaults()
}

func main() {
	var cfg DemoConfig
	if err := config.LoadConfig("chaindemo", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chaindemo: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "chaindemo: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)
	log.Info("starting", logger.Fields("version", version.Get().Short(), "environment", cfg.Environment))

	if err := run(cfg, log); err != nil {
		log.Fatal("demo failed", logger.ErrorFields("run", err))
	}
}

func run(cfg DemoConfig, log *logger.Logger) error {
	opts := []chain.Option{chain.WithLogger(log)}
	if cfg.Chain.Immediate {
		opts = append(opts, chain.Immediate())
	}

	log.Info("basic string chain")
	c1 := chain.Pipe("Hello World!", chain.Size[string], opts...)
	c1 = chain.Then(c1, chain.Pure(func(x int) int { return x * 2 }))
	v1 := chain.ThenDo(c1, chain.Effect(func(x int) {
		log.Info("result", logger.Fields("value", x))
	}))
	if err := v1.Execute(); err != nil {
		return err
	}

	log.Info("number chain")
	c2 := chain.Pipe(5, chain.Pure(func(x int) int { return x + 10 }), opts...)
	c2 = chain.Then(c2, chain.Pure(func(x int) int { return x * x }))
	if err := c2.Execute(); err != nil {
		return err
	}
	square, err := c2.Result()
	if err != nil {
		return err
	}
	log.Info("square", logger.Fields("value", square))

	log.Info("terminal effect chain")
	v3 := chain.ThenDo(chain.New(42, opts...), chain.Effect(func(x int) {
		log.Info("first", logger.Fields("value", x))
	}))
	v3 = v3.Then(chain.Do(func() {
		log.Info("second operation")
	}))
	if err := v3.Execute(); err != nil {
		return err
	}
	// Idempotent: a second run re-emits nothing.
	if err := v3.Execute(); err != nil {
		return err
	}

	log.Info("vector chain")
	c4 := chain.Pipe([]int{1, 2, 3, 4, 5}, chain.Size[[]int], opts...)
	c4 = chain.Then(c4, chain.Pure(func(x int) int { return x * 10 }))
	if err := c4.Execute(); err != nil {
		return err
	}
	size10, err := c4.Result()
	if err != nil {
		return err
	}
	log.Info("vector size x10", logger.Fields("value", size10))

	log.Info("mask demo")
	m, err := mask.New(1, 0, 1)
	if err != nil {
		return err
	}
	kept := mask.Filter(m, []int{10, 20, 30, 40, 50, 60})
	log.Info("mask filtered", logger.Fields("kept", kept))
	doubled := mask.FilterTransform(m, []int{1, 2, 3, 4, 5, 6}, func(x int) int { return x * 2 })
	log.Info("mask filter-transformed", logger.Fields("values", doubled))

	log.Info("pool demo")
	p, err := pool.New[string](4)
	if err != nil {
		return err
	}
	first, err := p.Create("alpha")
	if err != nil {
		return err
	}
	if _, err := p.Create("beta"); err != nil {
		return err
	}
	idx, err := p.Position(first)
	if err != nil {
		return err
	}
	log.Info("pool state", logger.Fields("count", p.Count(), "first_at", idx))
	if err := p.Delete(idx); err != nil {
		return err
	}
	log.Info("pool after delete", logger.Fields("count", p.Count()))

	log.Info("rng demo", logger.Fields("a", cfg.RNG.A, "c", cfg.RNG.C, "m", cfg.RNG.M))
	g, err := rng.New(cfg.RNG)
	if err != nil {
		return err
	}
	values := g.Iter().Take(8)
	log.Info("rng sequence", logger.Fields("values", values, "count", len(values)))

	return nil
}
