package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// ListeningPortKey is the port where the HTTP interface will listen on
	ListeningPortKey = "LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of the engine
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// AdminKey is the identity holding the admin capabilities
	AdminKey = "ADMIN"
	// FeeRecipientKey is the identity credited with the platform fee at settlement
	FeeRecipientKey = "FEE_RECIPIENT"
	// FeeBasisPointKey is the platform fee expressed in basis points
	FeeBasisPointKey = "FEE_BASIS_POINT"
	// RegistryAddrKey is the base URL of the asset registry service
	RegistryAddrKey = "REGISTRY_ADDR"
	// TreasuryAddrKey is the base URL of the payment rail service
	TreasuryAddrKey = "TREASURY_ADDR"
	// OracleAddrKey is the base URL of the randomness provider service
	OracleAddrKey = "ORACLE_ADDR"
	// NoUpkeepKey disables the embedded upkeep poller, leaving settlement
	// entirely to external keepers
	NoUpkeepKey = "NO_UPKEEP"
	// UpkeepIntervalKey is the polling interval of the embedded upkeep poller
	// in milliseconds
	UpkeepIntervalKey = "UPKEEP_INTERVAL"

	// DbLocation is the subdirectory of the datadir holding the databases
	DbLocation = "db"
)

var vip *viper.Viper

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("AUCTION")
	vip.AutomaticEnv()

	vip.SetDefault(ListeningPortKey, 9945)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(FeeBasisPointKey, 250)
	vip.SetDefault(NoUpkeepKey, false)
	vip.SetDefault(UpkeepIntervalKey, 5000)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	if !vip.IsSet(AdminKey) {
		return fmt.Errorf("missing admin identity")
	}
	if !vip.IsSet(FeeRecipientKey) {
		return fmt.Errorf("missing fee recipient identity")
	}

	feeBasisPoint := GetUint64(FeeBasisPointKey)
	if feeBasisPoint >= 10000 {
		return fmt.Errorf("%s must be lower than 10000", FeeBasisPointKey)
	}

	if !vip.IsSet(RegistryAddrKey) {
		return fmt.Errorf("missing asset registry address")
	}
	if !vip.IsSet(TreasuryAddrKey) {
		return fmt.Errorf("missing treasury address")
	}

	interval := GetInt(UpkeepIntervalKey)
	if interval <= 0 {
		return fmt.Errorf("%s must be a positive number of milliseconds", UpkeepIntervalKey)
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDbDir())
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".auctiond"
	}
	return filepath.Join(home, ".auctiond")
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
