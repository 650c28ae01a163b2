package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/milk9111/debugdraw/debugdraw"
	"github.com/milk9111/debugdraw/physics"
	"go.uber.org/zap"
)

// sim is the state touched by a simulation tick. Only one goroutine may
// use it at a time.
type sim struct {
	world   *physics.World
	adapter *debugdraw.Adapter
	dt      float64
	paused  bool
}

func (s *sim) tick() {
	if !s.paused {
		s.world.Step(s.dt)
	}
	s.adapter.Update()
}

type command func(s *sim)

// producer runs the sim on its own goroutine for the shared buffer setup.
// The game talks to it only through commands and the stats snapshot.
type producer struct {
	sim      *sim
	interval time.Duration
	commands chan command
	stats    atomic.Pointer[debugdraw.Stats]
	log      *zap.Logger
}

func newProducer(s *sim, tickRate int, log *zap.Logger) *producer {
	return &producer{
		sim:      s,
		interval: time.Second / time.Duration(tickRate),
		commands: make(chan command, 32),
		log:      log,
	}
}

// send queues cmd for the producer goroutine. It drops the command when the
// queue is full.
func (p *producer) send(cmd command) {
	select {
	case p.commands <- cmd:
	default:
		p.log.Warn("producer command queue full, dropping command")
	}
}

// Stats returns the adapter stats as of the last tick.
func (p *producer) Stats() debugdraw.Stats {
	if st := p.stats.Load(); st != nil {
		return *st
	}
	return debugdraw.Stats{}
}

func (p *producer) run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-p.commands:
			cmd(p.sim)
		case <-ticker.C:
			p.step()
		}
	}
}

func (p *producer) step() {
	p.sim.tick()
	st := p.sim.adapter.Stats()
	p.stats.Store(&st)
}
