package main

import (
	"errors"
	"fmt"
	"strings"
)

// Commands to generate random MAC addresses.
type RandomCmd struct {
	Prefix    RandomPrefixCmd    `cmd:"" help:"Generate a random MAC address from a prefix"`
	Vendor    RandomVendorCmd    `cmd:"" help:"Generate a random MAC address from a vendor"`
	Interface RandomInterfaceCmd `cmd:"" help:"Generate a random MAC address for the given interfaces"`
}

// Print batch outcomes, one line per interface.
func printResults(results []MutationResult) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Println(res.Err)
			continue
		}
		fmt.Printf("Updated MAC address of %s to %s\n", res.Interface, res.Address)
	}
}

// Command to generate an address from a literal prefix, optionally assigning
// it to interfaces.
type RandomPrefixCmd struct {
	Prefix     string   `arg:"" help:"MAC address prefix to use"`
	Interfaces []string `arg:"" optional:"" name:"interface" help:"Interfaces to assign the address to"`
}

func (a *RandomPrefixCmd) Run() error {
	if err := VerifyPrefix(a.Prefix); err != nil {
		fmt.Println(err)
		return nil
	}

	if len(a.Interfaces) == 0 {
		fmt.Printf("Generating random MAC address with prefix %s...\n", a.Prefix)
		fmt.Printf("Random MAC address: %s\n", RandomFromPrefix(a.Prefix))
		return nil
	}

	registry, err := setupRegistry()
	if err != nil {
		return err
	}

	// Assigning to an interface requires a registered vendor prefix.
	record := registry.LookupByPrefix(a.Prefix)
	if record == nil {
		fmt.Printf("No vendor found with prefix %s!\n", a.Prefix)
		return nil
	}

	mutator := NewInterfaceMutator()
	results, err := mutator.ApplyBatch(record.Prefix, a.Interfaces)
	if errors.Is(err, ErrNeedRoot) {
		fmt.Println("You need to be root to run this command!")
		return nil
	}
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

// Command to generate an address from a vendor name, optionally assigning it
// to interfaces.
type RandomVendorCmd struct {
	Vendor     string   `arg:"" help:"Vendor to use"`
	Interfaces []string `arg:"" optional:"" name:"interface" help:"Interfaces to assign the address to"`
}

func (a *RandomVendorCmd) Run() error {
	registry, err := setupRegistry()
	if err != nil {
		return err
	}

	record := registry.LookupByVendor(a.Vendor)
	if record == nil {
		fmt.Printf("No vendor found with name %s!\n", a.Vendor)
		return nil
	}

	if len(a.Interfaces) == 0 {
		fmt.Printf("Random MAC address: %s\n", record.RandomFromPrefix())
		return nil
	}

	fmt.Printf("Generating random MAC address with vendor %s...\n", record.Vendor)
	mutator := NewInterfaceMutator()
	results, err := mutator.ApplyBatch(record.Prefix, a.Interfaces)
	if errors.Is(err, ErrNeedRoot) {
		fmt.Println("You need to be root to run this command!")
		return nil
	}
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

// Command to generate addresses keeping each interface's current vendor,
// optionally assigning them.
type RandomInterfaceCmd struct {
	Change     bool     `help:"Assign the generated address to the interface" short:"c"`
	Interfaces []string `arg:"" name:"interface" help:"Interfaces to use"`
}

func (a *RandomInterfaceCmd) Run() error {
	registry, err := setupRegistry()
	if err != nil {
		return err
	}

	mutator := NewInterfaceMutator()
	if a.Change && !mutator.Elevated() {
		fmt.Println("You need to be root to run this command!")
		return nil
	}

	fmt.Printf("Generating random MAC address for interface %s...\n", strings.Join(a.Interfaces, ", "))
	for _, name := range a.Interfaces {
		current, err := mutator.CurrentAddress(name)
		if err != nil {
			fmt.Printf("Failed to get MAC address for interface %s: %v\n", name, err)
			continue
		}
		if len(current) == 0 {
			fmt.Printf("No MAC address found for interface %s!\n", name)
			continue
		}

		record := registry.LookupByPrefix(current.String())
		if record == nil {
			fmt.Printf("No registered vendor found for interface %s!\n", name)
			continue
		}

		if !a.Change {
			fmt.Printf("MAC address for interface %s: %s\n", name, record.RandomFromPrefix())
			continue
		}

		address, err := mutator.Apply(record.Prefix, name)
		if err != nil {
			fmt.Printf("Failed to change MAC address for interface %s: %v\n", name, err)
			continue
		}
		fmt.Printf("MAC address for interface %s changed to %s\n", name, address)
	}
	return nil
}
