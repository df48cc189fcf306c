package main

// Basic application info.
const (
	serviceName        = "random-mac"
	serviceDescription = "Generate and assign random MAC addresses with real vendor prefixes"
	serviceVersion     = "0.3.0"
	updateOwner        = "Zylquinal"
	updateRepo         = "random-mac"
)

// The application start.
func main() {
	// Parse the flags.
	ctx := ParseFlags()

	// Configure logging.
	flags.Log.Apply()

	// Run the command and exit.
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
