package monitor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rmg-x/consolectl/pkg/ccapi"
	"github.com/rmg-x/consolectl/pkg/model"
)

// SubjectPrefix is the NATS subject namespace for monitor events. The full
// subject is <prefix>.<console>.events.<topic>.
const SubjectPrefix = "consolectl.monitor.v1"

const (
	topicConsoleStatus = "consolestatus"
	topicTemperature   = "temperature"
)

type consoleStatusDetails struct {
	Status string `json:"status"`
	Cell   *int32 `json:"cell,omitempty"`
	RSX    *int32 `json:"rsx,omitempty"`
}

type temperatureAlertDetails struct {
	Cell      int32 `json:"cell"`
	RSX       int32 `json:"rsx"`
	Threshold int32 `json:"threshold"`
}

func (ctrl *Controller) publishConsoleStatus(m *model.Console, status string, temp *ccapi.TemperatureInfo) error {
	details := &consoleStatusDetails{Status: status}
	if temp != nil {
		details.Cell = &temp.Cell
		details.RSX = &temp.RSX
	}

	return ctrl.publishEvent(m, topicConsoleStatus, details)
}

func (ctrl *Controller) publishTemperatureAlert(m *model.Console, temp *ccapi.TemperatureInfo) error {
	details := &temperatureAlertDetails{
		Cell:      temp.Cell,
		RSX:       temp.RSX,
		Threshold: ctrl.threshold,
	}

	return ctrl.publishEvent(m, topicTemperature, details)
}

// publishEvent persists the event and forwards it to NATS when connected.
func (ctrl *Controller) publishEvent(m *model.Console, topic string, details interface{}) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}

	event := &model.Event{
		ConsoleID: m.ID,
		Topic:     topic,
		Timestamp: time.Now().Round(time.Second).UTC(),
		Details:   string(data),
	}
	if err := ctrl.store.Events().Create(event); err != nil {
		return err
	}

	if ctrl.nc == nil {
		return nil
	}

	subj := fmt.Sprintf("%s.%s.events.%s", SubjectPrefix, m.Name, topic)
	return ctrl.nc.Publish(subj, data)
}
