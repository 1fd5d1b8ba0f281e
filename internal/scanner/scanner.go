// Package scanner 提供并发批量清理调度能力。
// 该层负责目录遍历、忽略过滤、任务分发、并发执行和结果聚合，
// 不负责词法扫描细节；单文件清理逻辑全部在 pipeline 中。
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"codeclean/internal/languages"
	"codeclean/internal/model"
	"codeclean/internal/pipeline"
)

// Service 是批量清理服务对象。
type Service struct {
	registry  *languages.Registry
	processor *pipeline.Processor
	options   model.Options
	workers   int
	ignore    []string
}

// cleanTask 表示一个待清理文件任务。
type cleanTask struct {
	absolutePath string
	displayPath  string
}

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	cleanResult *model.CleanResult
	fileError   *model.FileError
	skipped     bool
}

// NewService 创建批量清理服务。
// ignorePatterns 为 nil 时使用 DefaultIgnorePatterns。
func NewService(registry *languages.Registry, options model.Options, workers int, ignorePatterns []string) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if ignorePatterns == nil {
		ignorePatterns = DefaultIgnorePatterns
	}
	return &Service{
		registry:  registry,
		processor: pipeline.NewProcessor(registry),
		options:   options,
		workers:   workers,
		ignore:    ignorePatterns,
	}
}

// CleanPath 清理目录或单文件。
// 目录遍历只会入队已注册后缀的文件；显式给定的单文件即使语言未知也会处理
// （注释剥离降级为透传，空行合并与行尾归一化照常执行）。
func (s *Service) CleanPath(targetPath string) (model.BatchResult, error) {
	var result model.BatchResult

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return result, errors.New("clean path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}

	result.ScannedPath = absoluteTarget

	tasks := make(chan cleanTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		if info.IsDir() {
			walkErrChan <- s.enqueueDirectoryTasks(absoluteTarget, tasks)
			return
		}
		tasks <- cleanTask{
			absolutePath: absoluteTarget,
			displayPath:  filepath.Base(absoluteTarget),
		}
		walkErrChan <- nil
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	result.Files = make([]model.CleanResult, 0)
	result.Errors = make([]model.FileError, 0)

	for item := range results {
		if item.cleanResult != nil {
			result.Files = append(result.Files, *item.cleanResult)
		}
		if item.fileError != nil {
			result.Errors = append(result.Errors, *item.fileError)
		}
		if item.skipped {
			result.Total.Skipped++
		}
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return result, walkErr
	}

	s.buildSummary(&result)
	return result, nil
}

// enqueueDirectoryTasks 遍历目录并把可识别语言文件推入任务队列。
// 命中忽略模式的目录整体剪枝，命中忽略模式的文件直接跳过。
func (s *Service) enqueueDirectoryTasks(root string, tasks chan<- cleanTask) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}

		if entry.IsDir() {
			if matchIgnore(s.ignore, relativePath, entry.Name(), true) {
				return fs.SkipDir
			}
			return nil
		}

		if matchIgnore(s.ignore, relativePath, entry.Name(), false) {
			return nil
		}
		if _, ok := s.registry.ProfileForFile(path); !ok {
			return nil
		}

		tasks <- cleanTask{
			absolutePath: path,
			displayPath:  filepath.ToSlash(relativePath),
		}
		return nil
	})
}

// runWorker 执行真实的文件读取和清理管线。
// 读取失败记为文件级错误，疑似二进制文件跳过，两者都不会中断批量任务。
func (s *Service) runWorker(tasks <-chan cleanTask, results chan<- workerResult) {
	for task := range tasks {
		content, readErr := os.ReadFile(task.absolutePath)
		if readErr != nil {
			results <- workerResult{
				fileError: &model.FileError{
					Path:  task.displayPath,
					Error: readErr.Error(),
				},
			}
			continue
		}

		if looksBinary(content) {
			results <- workerResult{skipped: true}
			continue
		}

		cleanResult := s.processor.Process(task.displayPath, string(content), s.options)
		cleanResult.AbsolutePath = task.absolutePath
		results <- workerResult{cleanResult: &cleanResult}
	}
}

// buildSummary 排序明细并计算总计信息。
func (s *Service) buildSummary(result *model.BatchResult) {
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	skipped := result.Total.Skipped
	result.Total = model.BatchTotal{Skipped: skipped}
	for _, item := range result.Files {
		result.Total.AddResult(item)
	}
}

// Apply 把清理后的内容写回磁盘，只覆盖发生变化的文件。
// 该操作仅在调用方显式要求时执行（CLI 的 --write），
// 写入的内容已经带有目标行尾，不做任何二次转换。
func (s *Service) Apply(result model.BatchResult) (int, []model.FileError) {
	saved := 0
	var failures []model.FileError

	for _, item := range result.Files {
		if !item.Changed() || item.AbsolutePath == "" {
			continue
		}

		if err := os.WriteFile(item.AbsolutePath, []byte(item.Cleaned), 0o644); err != nil {
			failures = append(failures, model.FileError{
				Path:  item.Path,
				Error: err.Error(),
			})
			continue
		}
		saved++
	}

	return saved, failures
}
