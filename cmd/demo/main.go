package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/comalice/dispatchx"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	failures := make(chan dispatchx.Failure, 100)
	sink := dispatchx.NewLoggingSink(dispatchx.NewChannelSink(failures))

	em, err := dispatchx.NewBuilder().
		Allow("tick", "flaky").
		WithDiagnostic(sink).
		On("tick", func(payload any) {
			logger.WithField("seq", payload).Info("tick delivered")
		}).
		On("flaky", func(payload any) {
			panic("flaky listener blew up")
		}).
		On("flaky", func(payload any) {
			logger.Info("listener after the flaky one still runs")
		}).
		Build()
	if err != nil {
		panic(err)
	}

	// Drain the out-of-band failure channel.
	go func() {
		for f := range failures {
			logger.WithFields(logrus.Fields{
				"event":     f.Event,
				"recovered": f.Recovered,
			}).Warn("listener failure surfaced out-of-band")
		}
	}()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("emitting every 2s, Ctrl-C to stop")
	seq := 0
	for {
		select {
		case <-ticker.C:
			seq++
			em.Emit("tick", seq)
			if seq%3 == 0 {
				em.Emit("flaky")
			}
		case <-sig:
			em.OffAll()
			fmt.Println("registry cleared, exiting")
			return
		}
	}
}
