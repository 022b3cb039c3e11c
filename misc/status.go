package misc

import "github.com/gin-gonic/gin"

// Every mutating endpoint answers with a human readable message plus
// whatever entities are relevant; failures carry the message alone.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Id      string `json:"id,omitempty"`
}

func StatusOK(id string, msg ...string) *Status {
	m := "OK"
	if len(msg) > 0 {
		m = msg[0]
	}
	return &Status{Code: 200, Message: m, Id: id}
}

func StatusErr(msg string) *Status {
	return &Status{Code: -1, Message: msg}
}

func AbortWithErr(c *gin.Context, code int, err error) {
	c.JSON(code, StatusErr(err.Error()))
	c.Abort()
}
