// 包 export 负责把生成结果写入磁盘：
// - WriteFile：整文件覆盖写入（无原子替换/备份，并发写入以最后一次为准）
// - ToJSONData：可选的 data.json 数据导出
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile 覆盖写入 path，必要时创建父目录。
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
