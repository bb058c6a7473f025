package mq_client

type Exchange struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Queue struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

type Binding struct {
	Queue      string `yaml:"queue"`
	CleanStart bool   `yaml:"clean_start"`
	Exchange   string `yaml:"exchange"`
}

type MQClientConfig struct {
	Exchange struct {
		Events Exchange `yaml:"events"`
		Ledger Exchange `yaml:"ledger"`
	}
	Queue struct {
		WithdrawalEvents Queue `yaml:"withdrawal_events"`
	}
	Binding struct {
		WithdrawalEvents Binding `yaml:"withdrawal_events"`
	}
}
