package main

import "fmt"

// Command to refresh the vendor database from the datasource.
type UpdateCmd struct{}

func (a *UpdateCmd) Run() error {
	fmt.Println("Updating database...")

	dsPath, err := DatasourcePath()
	if err != nil {
		return err
	}
	ds, err := SetupDataSource(dsPath)
	if err != nil {
		return err
	}

	records, err := ds.FetchInformation()
	if err != nil {
		return err
	}

	dbPath, err := DatabasePath()
	if err != nil {
		return err
	}
	adapter, err := AdapterByName(ds.Name)
	if err != nil {
		return err
	}

	registry := NewVendorRegistry(dbPath, adapter, records)
	if err = registry.Save(); err != nil {
		return err
	}

	fmt.Printf("Database updated, found %d entries!\n", registry.Len())
	return nil
}
