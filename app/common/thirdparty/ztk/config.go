package ztk

const defaultGuessYouLikePath = "/api/open_guess_you_like.ashx"

type Conf struct {
	Endpoint         string `json:",default=https://api.zhetaoke.com:10001"`
	GuessYouLikePath string `json:",default=/api/open_guess_you_like.ashx"`
	AppKey           string
	Sid              string `json:",optional"`
	// milliseconds
	Timeout int64 `json:",default=5000"`
}
