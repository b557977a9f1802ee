package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
)

var ErrPIDExists = errors.New("arquivo PID já existe")

func SavePID(path string, pid int) error {
	if path == "" {
		return errors.New("caminho do arquivo PID não informado")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório do PID: %w", err)
	}

	// O_EXCL evita dois servidores gravando o mesmo arquivo
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w em %s - o servidor pode estar em execução", ErrPIDExists, path)
		}
		return fmt.Errorf("falha ao criar arquivo PID: %w", err)
	}
	defer f.Close()

	_, err = f.WriteString(strconv.Itoa(pid))
	return err
}

func LoadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("falha ao ler arquivo PID: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("PID inválido em %s", path)
	}
	return pid, nil
}

func RemovePID(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

func TerminateProcess(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("não foi possível localizar o processo %d: %w", pid, err)
	}
	if runtime.GOOS == "windows" {
		return proc.Kill()
	}
	return proc.Signal(syscall.SIGTERM)
}

// Alive informa se há processo com o PID. No Windows só confere a existência.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, os.ErrPermission)
}

// ClaimPID grava o PID, descartando antes um arquivo deixado por processo que já morreu.
func ClaimPID(path string, pid int) error {
	if old, err := LoadPID(path); err == nil && !Alive(old) {
		RemovePID(path)
	}
	return SavePID(path, pid)
}
