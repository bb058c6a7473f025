package daemons

type Worker interface {
	Start()
}
