package settings

type Settings struct {
	Host           Host           `json:"Host"`
	Port           int            `json:"Port"`
	BeatIntervalMs BeatIntervalMs `json:"BeatIntervalMs"`
	DialTimeoutMs  DialTimeoutMs  `json:"DialTimeoutMs"`
}

// NewDefaultSettings builds Settings for the given endpoint with the default
// interval and dial timeout.
func NewDefaultSettings(host Host, port int) Settings {
	return Settings{
		Host:           host,
		Port:           port,
		BeatIntervalMs: DefaultBeatIntervalMs,
		DialTimeoutMs:  DefaultDialTimeoutMs,
	}
}
