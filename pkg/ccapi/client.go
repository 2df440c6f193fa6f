// Package ccapi implements the ControlConsole API, the HTTP remote-control
// protocol spoken by PS3 consoles. Every command is a GET request against
// /ccapi/<command> on the console; the plain-text response carries a
// hexadecimal status line followed by one payload value per line.
package ccapi

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultPort is the TCP port the console API listens on.
const DefaultPort = 6333

// DefaultTimeout bounds a single console round trip.
const DefaultTimeout = 10 * time.Second

// Client talks to a single console.
type Client struct {
	host string
	port int
	hc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithPort overrides the default console port.
func WithPort(port int) Option {
	return func(c *Client) {
		c.port = port
	}
}

// WithTimeout overrides the default request timeout. Ignored when a custom
// http.Client is supplied.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.hc.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// New creates a client for the console reachable at host. Typically the
// host is an IPv4 address in a private range (e.g. 192.168.x.x).
func New(host string, opts ...Option) *Client {
	c := &Client{
		host: host,
		port: DefaultPort,
		hc:   &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Addr returns the host:port the client is configured for.
func (c *Client) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// RingBuzzer rings the console buzzer with the given pattern.
func (c *Client) RingBuzzer(ctx context.Context, t BuzzerType) error {
	_, err := c.newRequest("ringbuzzer").
		param("type", strconv.Itoa(int(t))).
		send(ctx)
	return err
}

// Shutdown powers the console off or reboots it. The console drops the
// connection while answering, so transport errors are expected and ignored;
// a status error from the console still surfaces.
func (c *Client) Shutdown(ctx context.Context, mode ShutdownMode) error {
	_, err := c.newRequest("shutdown").
		param("mode", strconv.Itoa(int(mode))).
		send(ctx)
	if err != nil && !IsStatusError(err) {
		return nil
	}
	return err
}

// Notify displays an on-screen notification with the given icon.
func (c *Client) Notify(ctx context.Context, icon NotifyIcon, message string) error {
	_, err := c.newRequest("notify").
		param("id", strconv.Itoa(int(icon))).
		param("msg", message).
		send(ctx)
	return err
}

// SetConsoleLed sets the color and status of the console LED.
func (c *Client) SetConsoleLed(ctx context.Context, color LedColor, status LedStatus) error {
	_, err := c.newRequest("setconsoleled").
		param("color", strconv.Itoa(int(color))).
		param("status", strconv.Itoa(int(status))).
		send(ctx)
	return err
}

// GetFirmwareInfo returns the firmware identification of the console.
func (c *Client) GetFirmwareInfo(ctx context.Context) (*FirmwareInfo, error) {
	res, err := c.newRequest("getfirmwareinfo").send(ctx)
	if err != nil {
		return nil, err
	}

	rawFirmware, err := res.line(1)
	if err != nil {
		return nil, err
	}
	rawAPI, err := res.line(2)
	if err != nil {
		return nil, err
	}
	rawType, err := res.line(3)
	if err != nil {
		return nil, err
	}

	firmwareVersion, err := strconv.ParseUint(rawFirmware, 10, 32)
	if err != nil {
		return nil, errors.Wrap(err, "malformed firmware version")
	}
	apiVersion, err := strconv.ParseUint(rawAPI, 16, 32)
	if err != nil {
		return nil, errors.Wrap(err, "malformed API version")
	}
	consoleType, err := strconv.Atoi(rawType)
	if err != nil {
		return nil, errors.Wrap(err, "malformed console type")
	}

	return &FirmwareInfo{
		FirmwareVersion: uint32(firmwareVersion),
		APIVersion:      uint32(apiVersion),
		Type:            consoleTypeFromValue(consoleType),
	}, nil
}

// GetTemperature returns the CELL and RSX temperatures in celsius.
func (c *Client) GetTemperature(ctx context.Context) (*TemperatureInfo, error) {
	res, err := c.newRequest("gettemperature").send(ctx)
	if err != nil {
		return nil, err
	}

	rawCell, err := res.line(1)
	if err != nil {
		return nil, err
	}
	rawRSX, err := res.line(2)
	if err != nil {
		return nil, err
	}

	cell, err := strconv.ParseInt(rawCell, 16, 32)
	if err != nil {
		return nil, errors.Wrap(err, "malformed CELL temperature")
	}
	rsx, err := strconv.ParseInt(rawRSX, 16, 32)
	if err != nil {
		return nil, errors.Wrap(err, "malformed RSX temperature")
	}

	return &TemperatureInfo{Cell: int32(cell), RSX: int32(rsx)}, nil
}

// GetProcessList returns the identifiers of all running processes. Lines
// that do not parse as a pid are skipped.
func (c *Client) GetProcessList(ctx context.Context) ([]uint32, error) {
	res, err := c.newRequest("getprocesslist").send(ctx)
	if err != nil {
		return nil, err
	}

	pids := make([]uint32, 0)
	for _, raw := range res.payload() {
		pid, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			continue
		}
		pids = append(pids, uint32(pid))
	}

	return pids, nil
}

// GetProcessName returns the name of the process with the given pid.
func (c *Client) GetProcessName(ctx context.Context, pid uint32) (string, error) {
	res, err := c.newRequest("getprocessname").
		param("pid", strconv.FormatUint(uint64(pid), 10)).
		send(ctx)
	if err != nil {
		return "", err
	}

	name, err := res.line(1)
	if err != nil {
		return "", errors.Wrapf(err, "no process name for pid %d", pid)
	}

	return name, nil
}

// GetProcessMap returns all running processes keyed by pid.
func (c *Client) GetProcessMap(ctx context.Context) (map[uint32]string, error) {
	pids, err := c.GetProcessList(ctx)
	if err != nil {
		return nil, err
	}

	processes := make(map[uint32]string, len(pids))
	for _, pid := range pids {
		name, err := c.GetProcessName(ctx, pid)
		if err != nil {
			return nil, err
		}
		processes[pid] = name
	}

	return processes, nil
}

// ReadMemory reads size bytes of process memory starting at addr. The
// console returns the bytes hex-encoded on the payload line.
func (c *Client) ReadMemory(ctx context.Context, pid uint32, addr uint64, size uint32) ([]byte, error) {
	res, err := c.newRequest("getmemory").
		param("pid", strconv.FormatUint(uint64(pid), 10)).
		param("addr", fmt.Sprintf("%#x", addr)).
		param("size", strconv.FormatUint(uint64(size), 10)).
		send(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := res.line(1)
	if err != nil {
		return nil, err
	}

	data, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.Wrap(err, "malformed memory payload")
	}

	return data, nil
}

// WriteMemory writes data into process memory at addr.
func (c *Client) WriteMemory(ctx context.Context, pid uint32, addr uint64, data []byte) error {
	_, err := c.newRequest("setmemory").
		param("pid", strconv.FormatUint(uint64(pid), 10)).
		param("addr", fmt.Sprintf("%#x", addr)).
		param("value", hex.EncodeToString(data)).
		send(ctx)
	return err
}
