package workers

import (
	"context"
	"testing"
	"time"

	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWorker(t *testing.T, repository repositories.Repository, interval time.Duration) (chan<- SavePlayerDataRequest, context.CancelFunc, <-chan struct{}) {
	t.Helper()
	saveDataChan := make(chan SavePlayerDataRequest)
	worker := NewSavePlayerDataWorker(NewSavePlayerDataWorkerOptions{
		Repository:   repository,
		SaveDataChan: saveDataChan,
		Slot:         constants.DefaultSaveSlot,
		Interval:     interval,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()
	return saveDataChan, cancel, done
}

func TestSavePlayerDataWorker_Immediate(t *testing.T) {
	repository := repositories.NewInMemoryRepository()
	saveDataChan, cancel, done := startWorker(t, repository, time.Hour)
	defer func() {
		cancel()
		<-done
	}()

	playerData := types.NewPlayerData()
	playerData.UpdateSettings(0.1, 0.2, 0.3)
	saveDataChan <- SavePlayerDataRequest{
		Timestamp:  time.Now().UnixMilli(),
		PlayerData: playerData,
		Immediate:  true,
	}

	assert.Eventually(t, func() bool {
		saved, err := repository.LoadPlayerData(context.Background(), constants.DefaultSaveSlot)
		return err == nil && saved.Equal(playerData)
	}, time.Second, 10*time.Millisecond)
}

func TestSavePlayerDataWorker_Ticker(t *testing.T) {
	repository := repositories.NewInMemoryRepository()
	saveDataChan, cancel, done := startWorker(t, repository, 20*time.Millisecond)
	defer func() {
		cancel()
		<-done
	}()

	playerData := types.NewPlayerData()
	saveDataChan <- SavePlayerDataRequest{PlayerData: playerData}

	assert.Eventually(t, func() bool {
		_, err := repository.LoadPlayerData(context.Background(), constants.DefaultSaveSlot)
		return err == nil
	}, time.Second, 10*time.Millisecond)
}

func TestSavePlayerDataWorker_FlushOnCancel(t *testing.T) {
	repository := repositories.NewInMemoryRepository()
	saveDataChan, cancel, done := startWorker(t, repository, time.Hour)

	playerData := types.NewPlayerData()
	saveDataChan <- SavePlayerDataRequest{PlayerData: playerData}

	cancel()
	<-done

	saved, err := repository.LoadPlayerData(context.Background(), constants.DefaultSaveSlot)
	require.NoError(t, err)
	assert.Equal(t, playerData.ID, saved.ID)
}

func TestSavePlayerDataWorker_DropPending(t *testing.T) {
	repository := repositories.NewInMemoryRepository()
	saveDataChan, cancel, done := startWorker(t, repository, time.Hour)

	saveDataChan <- SavePlayerDataRequest{PlayerData: types.NewPlayerData()}
	saveDataChan <- SavePlayerDataRequest{}

	cancel()
	<-done

	_, err := repository.LoadPlayerData(context.Background(), constants.DefaultSaveSlot)
	assert.True(t, repositories.IsNotFound(err))
}
