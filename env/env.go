package env

type Args struct {
	Test     *bool
	NoReport *bool
	Verbose  *bool
	Speedon  *bool
	Diron    *bool
	Rainon   *bool
}
