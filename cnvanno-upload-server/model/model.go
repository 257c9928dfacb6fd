package model

// Response is the JSON body returned by the annotate endpoints.
type Response struct {
	Cnvanno Result `json:"cnvanno"`
}

// Result carries the formatted annotation for one request.
type Result struct {
	Annotation string `json:"annotation"`
}

// NewResponse wraps an annotation string in a Response.
func NewResponse(annotation string) Response {
	return Response{Cnvanno: Result{Annotation: annotation}}
}
