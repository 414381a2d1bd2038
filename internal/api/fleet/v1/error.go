package fleetv1

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
