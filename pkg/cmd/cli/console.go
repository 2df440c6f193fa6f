package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmg-x/consolectl/config"
	"github.com/rmg-x/consolectl/pkg/ccapi"
)

// ConsoleHandler implements the CLI commands that talk to a console
// directly.
type ConsoleHandler struct {
	c *config.Config
}

func newConsoleHandler(c *config.Config) *ConsoleHandler {
	return &ConsoleHandler{c: c}
}

func (h *ConsoleHandler) client() *ccapi.Client {
	if h.c.ConsoleHost == "" {
		log.Error("A console address is required, set --ip or CONSOLE_IP")
		os.Exit(2)
	}

	opts := []ccapi.Option{}
	if h.c.ConsolePort != 0 {
		opts = append(opts, ccapi.WithPort(h.c.ConsolePort))
	}

	return ccapi.New(h.c.ConsoleHost, opts...)
}

func (h *ConsoleHandler) RingBuzzer(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	}

	buzzer, err := ccapi.ParseBuzzerType(args[0])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	if err := h.client().RingBuzzer(context.Background(), buzzer); err != nil {
		log.Error("failed to ring buzzer: ", err)
		os.Exit(1)
	}
}

func (h *ConsoleHandler) Shutdown(cmd *cobra.Command, args []string) {
	if err := h.client().Shutdown(context.Background(), ccapi.ShutdownPowerOff); err != nil {
		log.Error("failed to shutdown console: ", err)
		os.Exit(1)
	}
}

func (h *ConsoleHandler) Restart(cmd *cobra.Command, args []string) {
	mode := ccapi.ShutdownHardReboot
	if len(args) > 0 {
		switch args[0] {
		case "soft":
			mode = ccapi.ShutdownSoftReboot
		case "hard":
			mode = ccapi.ShutdownHardReboot
		default:
			log.Errorf("invalid restart mode %q provided", args[0])
			os.Exit(2)
		}
	}

	if err := h.client().Shutdown(context.Background(), mode); err != nil {
		log.Error("failed to restart console: ", err)
		os.Exit(1)
	}
}

func (h *ConsoleHandler) Notify(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	}

	icon, err := ccapi.ParseNotifyIcon(args[0])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	if err := h.client().Notify(context.Background(), icon, args[1]); err != nil {
		log.Error("failed to send notification: ", err)
		os.Exit(1)
	}
}

func (h *ConsoleHandler) SetLed(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	}

	color, err := ccapi.ParseLedColor(args[0])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	status, err := ccapi.ParseLedStatus(args[1])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	if err := h.client().SetConsoleLed(context.Background(), color, status); err != nil {
		log.Error("failed to set console LED: ", err)
		os.Exit(1)
	}
}

func (h *ConsoleHandler) Firmware(cmd *cobra.Command, args []string) {
	info, err := h.client().GetFirmwareInfo(context.Background())
	if err != nil {
		log.Error("failed to get firmware info: ", err)
		os.Exit(1)
	}

	fmt.Printf("firmware version: %d\n", info.FirmwareVersion)
	fmt.Printf("api version:      %#x\n", info.APIVersion)
	fmt.Printf("console type:     %s\n", info.Type)
}

func (h *ConsoleHandler) Temperature(cmd *cobra.Command, args []string) {
	temp, err := h.client().GetTemperature(context.Background())
	if err != nil {
		log.Error("failed to get temperature: ", err)
		os.Exit(1)
	}

	fmt.Printf("cell: %d °C\n", temp.Cell)
	fmt.Printf("rsx:  %d °C\n", temp.RSX)
}

func (h *ConsoleHandler) ProcessList(cmd *cobra.Command, args []string) {
	pids, err := h.client().GetProcessList(context.Background())
	if err != nil {
		log.Error("failed to get process list: ", err)
		os.Exit(1)
	}

	for _, pid := range pids {
		fmt.Println(pid)
	}
}

func (h *ConsoleHandler) ProcessName(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	}

	pid, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		log.Errorf("invalid process id %q provided", args[0])
		os.Exit(2)
	}

	name, err := h.client().GetProcessName(context.Background(), uint32(pid))
	if err != nil {
		log.Error("failed to get process name: ", err)
		os.Exit(1)
	}

	fmt.Println(name)
}

func (h *ConsoleHandler) ProcessMap(cmd *cobra.Command, args []string) {
	processes, err := h.client().GetProcessMap(context.Background())
	if err != nil {
		log.Error("failed to get process map: ", err)
		os.Exit(1)
	}

	pids := make([]uint32, 0, len(processes))
	for pid := range processes {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	for _, pid := range pids {
		fmt.Printf("%d\t%s\n", pid, processes[pid])
	}
}

func (h *ConsoleHandler) MemoryRead(cmd *cobra.Command, args []string) {
	if len(args) < 3 {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	}

	pid, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		log.Errorf("invalid process id %q provided", args[0])
		os.Exit(2)
	}

	addr, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		log.Errorf("invalid address %q provided", args[1])
		os.Exit(2)
	}

	size, err := strconv.ParseUint(args[2], 0, 32)
	if err != nil {
		log.Errorf("invalid size %q provided", args[2])
		os.Exit(2)
	}

	data, err := h.client().ReadMemory(context.Background(), uint32(pid), addr, uint32(size))
	if err != nil {
		log.Error("failed to read process memory: ", err)
		os.Exit(1)
	}

	fmt.Print(hex.Dump(data))
}
