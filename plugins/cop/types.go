package cop

// EvaluateRequest is the POST /v1/cop body.
type EvaluateRequest struct {
	SourceTempC *float64 `json:"source_temp_c"`
	SinkTempC   *float64 `json:"sink_temp_c"`
}

// EvaluateResponse is a single COP evaluation.
type EvaluateResponse struct {
	COP      float64  `json:"cop"`
	Class    string   `json:"class"`
	DeltaTK  float64  `json:"delta_t_k"`
	SinkK    float64  `json:"sink_k"`
	Warnings []string `json:"warnings,omitempty"`
}

// ModelInfo describes one regression parameter set.
type ModelInfo struct {
	Class        string  `json:"class"`
	SinkOutLowC  float64 `json:"sink_out_low_c"`
	SinkOutHighC float64 `json:"sink_out_high_c"`
	A            float64 `json:"a"`
	B            float64 `json:"b"`
	C            float64 `json:"c"`
	D            float64 `json:"d"`
}

// ModelsResponse is the GET /v1/cop/models body.
type ModelsResponse struct {
	Models        []ModelInfo `json:"models"`
	QualityFactor float64     `json:"quality_factor"`
}
