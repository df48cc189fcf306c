package main

import (
	"errors"
	"fmt"
	"net"

	log "github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// Steps of the mutation sequence, named for failure reports.
const (
	StepProbe   = "probe"
	StepDisable = "disable"
	StepRewrite = "set address on"
	StepEnable  = "enable"
)

// MutationError reports which step of the mutation sequence failed for which
// interface.
type MutationError struct {
	Interface string
	Step      string
	Err       error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("failed to %s interface %s: %v", e.Step, e.Interface, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// MutationResult is the outcome of one interface in a batch.
type MutationResult struct {
	Interface string
	Address   string
	Err       error
}

// LinkControl is the boundary to the kernel's link layer: querying the
// current hardware address and driving the disable, rewrite, enable calls.
type LinkControl interface {
	AddressByName(name string) (net.HardwareAddr, error)
	SetDown(name string) error
	SetHardwareAddr(name string, addr net.HardwareAddr) error
	SetUp(name string) error
}

type netlinkControl struct{}

func (netlinkControl) AddressByName(name string) (net.HardwareAddr, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return nil, err
	}
	return link.Attrs().HardwareAddr, nil
}

func (netlinkControl) SetDown(name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetDown(link)
}

func (netlinkControl) SetHardwareAddr(name string, addr net.HardwareAddr) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetHardwareAddr(link, addr)
}

func (netlinkControl) SetUp(name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return err
	}
	return netlink.LinkSetUp(link)
}

// InterfaceMutator assigns freshly derived addresses to interfaces, one
// interface at a time.
type InterfaceMutator struct {
	links    LinkControl
	elevated func() bool
}

func NewInterfaceMutator() *InterfaceMutator {
	return &InterfaceMutator{
		links:    netlinkControl{},
		elevated: func() bool { return unix.Geteuid() == 0 },
	}
}

// Elevated reports whether the process may mutate interfaces.
func (m *InterfaceMutator) Elevated() bool {
	return m.elevated()
}

// CurrentAddress queries the interface's assigned hardware address. An
// interface without an address yields an empty address, an unknown
// interface an error.
func (m *InterfaceMutator) CurrentAddress(name string) (net.HardwareAddr, error) {
	return m.links.AddressByName(name)
}

// Apply derives a fresh address from the prefix and drives the interface
// through the disable, rewrite, enable sequence. A failed step aborts this
// interface only, no attempt is made to restore the previous state.
func (m *InterfaceMutator) Apply(prefix, name string) (string, error) {
	address := RandomFromPrefix(prefix)
	hw, err := net.ParseMAC(address)
	if err != nil {
		// Registry prefixes are colon form, so this only trips on a
		// corrupt record.
		return "", fmt.Errorf("derived unparseable address %q: %w", address, err)
	}

	logger := log.WithFields(log.Fields{"interface": name})

	// Probe first so a missing interface is reported without touching links.
	current, err := m.links.AddressByName(name)
	if err != nil {
		return "", &MutationError{Interface: name, Step: StepProbe, Err: err}
	}
	if len(current) == 0 {
		return "", &MutationError{Interface: name, Step: StepProbe, Err: errors.New("no hardware address reported")}
	}
	logger.Debugf("Current MAC address is %s.", current)

	if err = m.links.SetDown(name); err != nil {
		return "", &MutationError{Interface: name, Step: StepDisable, Err: err}
	}
	if err = m.links.SetHardwareAddr(name, hw); err != nil {
		return "", &MutationError{Interface: name, Step: StepRewrite, Err: err}
	}
	if err = m.links.SetUp(name); err != nil {
		return "", &MutationError{Interface: name, Step: StepEnable, Err: err}
	}

	logger.Debugf("MAC address rewritten to %s.", address)
	return address, nil
}

// ApplyBatch processes every interface to completion, one interface's
// failure never halts the rest. A single privilege check protects the whole
// batch before any interface is probed.
func (m *InterfaceMutator) ApplyBatch(prefix string, interfaces []string) ([]MutationResult, error) {
	if !m.elevated() {
		return nil, ErrNeedRoot
	}

	results := make([]MutationResult, 0, len(interfaces))
	for _, name := range interfaces {
		address, err := m.Apply(prefix, name)
		results = append(results, MutationResult{
			Interface: name,
			Address:   address,
			Err:       err,
		})
	}
	return results, nil
}
