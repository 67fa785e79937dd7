package request

// TriggerRunRequest starts one reminder pass by hand. An empty granularity
// defaults to "manual".
type TriggerRunRequest struct {
	Granularity string `json:"granularity" binding:"omitempty,oneof=frequent normal manual"`
}
