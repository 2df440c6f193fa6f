// Package monitor polls registered consoles for telemetry, records the
// readings and publishes status transitions to NATS.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/rmg-x/consolectl/pkg/ccapi"
	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage"
)

// DefaultPollInterval is used when the configuration doesn't set one.
const DefaultPollInterval = 30 * time.Second

// DefaultCellAlertThreshold is the CELL temperature in celsius above which
// a temperature alert event is emitted.
const DefaultCellAlertThreshold = 75

const (
	statusOnline  = "online"
	statusOffline = "offline"
)

// Controller drives the poll loop over all registered consoles.
type Controller struct {
	nc        *nats.Conn
	store     storage.Interface
	interval  time.Duration
	threshold int32

	// dial builds the protocol client for a console, replaceable in tests.
	dial func(m *model.Console) *ccapi.Client

	quitCh chan bool
	doneCh chan bool

	mu     sync.Mutex
	online map[int32]bool
}

// NewController creates a controller polling every interval. The NATS
// connection may be nil, in which case events are only persisted.
func NewController(nc *nats.Conn, store storage.Interface, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Controller{
		nc:        nc,
		store:     store,
		interval:  interval,
		threshold: DefaultCellAlertThreshold,
		dial: func(m *model.Console) *ccapi.Client {
			return ccapi.New(m.Host, ccapi.WithPort(m.Port))
		},
		quitCh: make(chan bool),
		doneCh: make(chan bool),
		online: make(map[int32]bool),
	}
}

// Run polls all registered consoles until Shutdown is called.
func (ctrl *Controller) Run() {
	log.WithFields(log.Fields{
		"interval": ctrl.interval.String(),
	}).Info("Starting monitor poll loop")

	ticker := time.NewTicker(ctrl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctrl.PollAll(context.Background())
		case <-ctrl.quitCh:
			log.Info("Monitor poll loop stopped")
			ctrl.doneCh <- true
			return
		}
	}
}

// Shutdown stops the poll loop and waits for it to drain.
func (ctrl *Controller) Shutdown() {
	ctrl.quitCh <- true

	select {
	case <-ctrl.doneCh:
	case <-time.After(10 * time.Second):
		log.Error("Shutdown monitor poll loop failed")
	}
}

// PollAll runs a single poll round over all registered consoles.
func (ctrl *Controller) PollAll(ctx context.Context) {
	consoles, err := ctrl.store.Consoles().FetchAll()
	if err != nil {
		log.Error("monitor: failed to fetch consoles: ", err)
		return
	}

	var wg sync.WaitGroup
	for _, m := range consoles {
		m := m
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctrl.poll(ctx, &m)
		}()
	}
	wg.Wait()
}

func (ctrl *Controller) poll(ctx context.Context, m *model.Console) {
	client := ctrl.dial(m)

	temp, err := client.GetTemperature(ctx)
	if err != nil {
		log.WithFields(log.Fields{
			"console": m.Name,
			"addr":    client.Addr(),
		}).Debug("monitor: console unreachable: ", err)
		ctrl.transition(m, statusOffline, nil)
		return
	}

	ctrl.transition(m, statusOnline, temp)

	sample := &model.Sample{
		ConsoleID: m.ID,
		Cell:      temp.Cell,
		RSX:       temp.RSX,
		Timestamp: time.Now().Round(time.Second).UTC(),
	}
	if err := ctrl.store.Samples().Create(sample); err != nil {
		log.Error("monitor: failed to record sample: ", err)
	}

	if temp.Cell >= ctrl.threshold {
		ctrl.alert(m, temp)
	}
}

// transition emits a consolestatus event when the online state changed
// since the previous round.
func (ctrl *Controller) transition(m *model.Console, status string, temp *ccapi.TemperatureInfo) {
	ctrl.mu.Lock()
	prev, seen := ctrl.online[m.ID]
	now := status == statusOnline
	ctrl.online[m.ID] = now
	ctrl.mu.Unlock()

	if seen && prev == now {
		return
	}

	log.WithFields(log.Fields{
		"console": m.Name,
		"status":  status,
	}).Info("Console status changed")

	if err := ctrl.publishConsoleStatus(m, status, temp); err != nil {
		log.Error("monitor: failed to publish console status: ", err)
	}
}

func (ctrl *Controller) alert(m *model.Console, temp *ccapi.TemperatureInfo) {
	log.WithFields(log.Fields{
		"console": m.Name,
		"cell":    temp.Cell,
		"rsx":     temp.RSX,
	}).Warn("Console temperature above threshold")

	if err := ctrl.publishTemperatureAlert(m, temp); err != nil {
		log.Error("monitor: failed to publish temperature alert: ", err)
	}
}
