package configs

type Vote struct {
	StaffApproveThreshold    int `env:"STAFF_APPROVE_THRESHOLD" envDefault:"2"`
	StaffRejectThreshold     int `env:"STAFF_REJECT_THRESHOLD" envDefault:"2"`
	VeteransApproveThreshold int `env:"VETERANS_APPROVE_THRESHOLD" envDefault:"3"`
	VeteransRejectThreshold  int `env:"VETERANS_REJECT_THRESHOLD" envDefault:"3"`
}
