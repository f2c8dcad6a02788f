package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	StorageCleanup *StorageCleanupService
}

func InitProduce(channel *amqp.Channel) *Produce {
	storageCleanup := InitStorageCleanupService(channel)
	if storageCleanup == nil {
		panic("Failed to initialize Storage cleanup service")
	}

	return &Produce{
		StorageCleanup: storageCleanup,
	}
}
