package dbtool

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// RunSeedCommand 以子进程方式执行 Descriptor 声明的种子命令。
// 命令串按空白拆分，不经过 shell。
func RunSeedCommand(ctx context.Context, desc Descriptor) error {
	fields := strings.Fields(desc.SeedCommand)
	if len(fields) == 0 {
		return errors.New("seed command is empty")
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	return cmd.Run()
}
