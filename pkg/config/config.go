package config

// Config provides the settings of the cnctl CLI.
type Config interface {
	// Address is the host of the ColorNavigator API server.
	Address() string
	// Port is the port of the ColorNavigator API server. It must match the
	// API port configured in ColorNavigator preferences.
	Port() int
	// APIAddress is the host:port value the API client connects to.
	APIAddress() string

	SetAddress(string)
	SetPort(int)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
