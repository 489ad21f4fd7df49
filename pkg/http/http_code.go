package http

var (
	Failed        = failed(500, "Request failed")
	InternalError = failed(500, "Internal error, please contact the administrator")

	BadRequest = failed(400, "Bad request")
	NotFound   = failed(404, "Not found")

	// Unauthorized 401
	Unauthorized         = failed(401, "Unauthorized")
	TokenBeEmpty         = failed(401, "Token cannot be empty")
	TokenFormatIncorrect = failed(401, "Token format is incorrect")
	InvalidToken         = failed(401, "Invalid token")
	TokenExpired         = failed(401, "Token is expired")

	// Forbidden 403
	Forbidden = failed(403, "Forbidden")

	TooManyRequests = failed(429, "Too many requests")
)

var (
	Success = success(200, "Request Success")
	Created = success(201, "Created")
)

func failed(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}

func success(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}
