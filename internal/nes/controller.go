package nes

// Controller latches a single state byte. The real shift-register
// serial protocol is not modeled.
type Controller struct {
	state uint8
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) Read() uint8 {
	return c.state
}

func (c *Controller) Write(data uint8) {
	c.state = data
}
