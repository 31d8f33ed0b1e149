package models

// Header is one common request header applied to every generated sampler.
// Entries with a blank key are dropped at serialization time.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PlanConfig holds the user-specified load settings for a generated plan.
type PlanConfig struct {
	Title    string   `json:"title"`
	BaseURL  string   `json:"baseUrl"`
	Threads  int      `json:"threads"`
	RampTime int      `json:"rampTime"`
	Duration int      `json:"duration"`
	Headers  []Header `json:"headers"`
}

// BaseURL is the protocol/host/port triple a base URL splits into. When the
// URL cannot be parsed the fields carry symbolic placeholder tokens meant for
// run-time substitution by the consuming tool.
type BaseURL struct {
	Protocol string `json:"protocol"`
	Host     string `json:"host"`
	Port     string `json:"port"`
}
