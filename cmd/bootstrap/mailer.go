package bootstrap

import (
	"blueprint-api/internal/infra/mailer"
	"blueprint-api/internal/pkg/config"
	"blueprint-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		func(cfg config.Config) config.MailConfig {
			return cfg.Mail
		},
		fx.Annotate(
			mailer.NewSMTPSender,
			fx.As(new(commands.Sender)),
		),
	),
)
